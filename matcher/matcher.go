package matcher

import (
	"strings"

	"github.com/routewise/routewise/route"
)

// Matcher resolves a location into a route snapshot, relative to the route
// the application is currently on. Implementations must be deterministic
// and must return identical *route.Record pointers for unchanged table
// entries across calls.
type Matcher interface {
	Match(loc route.Location, current *route.Route) *route.Route
}

// Config declares one route-table entry. Component is shorthand for a
// single definition in the default slot; Components declares named slots.
// Children nest under the parent's path, unless a child path is absolute.
type Config struct {
	Path        string
	Name        string
	Component   *route.Component
	Components  map[string]*route.Component
	Children    []Config
	Redirect    string
	BeforeEnter route.Guard
	Props       map[string]route.PropsFunc
	Meta        map[string]any
}

// Table is the compiled route table. Records are created once at
// construction and shared by identity across every match.
type Table struct {
	pathList []string
	pathMap  map[string]*route.Record
	nameMap  map[string]*route.Record
}

// NewTable compiles the configs into a matcher. Declaration order is match
// priority.
func NewTable(cfgs []Config) *Table {
	t := &Table{
		pathMap: make(map[string]*route.Record),
		nameMap: make(map[string]*route.Record),
	}
	for _, cfg := range cfgs {
		t.addRecord(cfg, nil)
	}
	return t
}

func (t *Table) addRecord(cfg Config, parent *route.Record) {
	pattern := joinPath(parent, cfg.Path)

	components := cfg.Components
	if components == nil && cfg.Component != nil {
		components = map[string]*route.Component{route.DefaultSlot: cfg.Component}
	}

	rec := &route.Record{
		Path:        pattern,
		Name:        cfg.Name,
		Parent:      parent,
		Components:  components,
		BeforeEnter: cfg.BeforeEnter,
		Props:       cfg.Props,
		Instances:   make(map[string]route.Instance),
		Meta:        cfg.Meta,
	}
	if cfg.Redirect != "" {
		target := route.ParseLocation(cfg.Redirect)
		rec.Redirect = &target
	}

	if _, dup := t.pathMap[pattern]; !dup {
		t.pathList = append(t.pathList, pattern)
		t.pathMap[pattern] = rec
	}
	if cfg.Name != "" {
		t.nameMap[cfg.Name] = rec
	}

	for _, child := range cfg.Children {
		t.addRecord(child, rec)
	}
}

// Match resolves loc against the table. Unmatched locations produce a route
// with an empty matched chain rather than an error.
func (t *Table) Match(loc route.Location, current *route.Route) *route.Route {
	return t.match(loc, current, nil, 0)
}

// redirect chains longer than this indicate a route-table cycle.
const maxRedirects = 10

func (t *Table) match(loc route.Location, current *route.Route, redirectedFrom *route.Location, depth int) *route.Route {
	if loc.Name != "" {
		rec := t.nameMap[loc.Name]
		if rec == nil {
			return route.NewRoute(nil, loc, redirectedFrom)
		}
		loc.Path = fillParams(rec.Path, loc.Params)
		return t.finish(rec, loc, redirectedFrom, depth)
	}

	loc.Path = resolvePath(loc.Path, current)
	for _, pattern := range t.pathList {
		params, ok := matchPattern(pattern, loc.Path)
		if !ok {
			continue
		}
		matched := loc
		matched.Params = mergeParams(loc.Params, params)
		return t.finish(t.pathMap[pattern], matched, redirectedFrom, depth)
	}
	return route.NewRoute(nil, loc, redirectedFrom)
}

func (t *Table) finish(rec *route.Record, loc route.Location, redirectedFrom *route.Location, depth int) *route.Route {
	if rec.Redirect != nil {
		if depth >= maxRedirects {
			return route.NewRoute(nil, loc, redirectedFrom)
		}
		target := *rec.Redirect
		target.Params = loc.Params
		if target.Query == nil {
			target.Query = loc.Query
		}
		if target.Hash == "" {
			target.Hash = loc.Hash
		}
		target.Path = fillParams(target.Path, target.Params)
		from := loc
		if redirectedFrom != nil {
			from = *redirectedFrom
		}
		return t.match(target, nil, &from, depth+1)
	}
	return route.NewRoute(rec, loc, redirectedFrom)
}

// joinPath compiles a child pattern under its parent. Absolute child paths
// stand alone.
func joinPath(parent *route.Record, path string) string {
	if parent == nil || strings.HasPrefix(path, "/") || path == "*" {
		return path
	}
	base := strings.TrimSuffix(parent.Path, "/")
	if path == "" {
		return parent.Path
	}
	return base + "/" + path
}

// matchPattern matches a compiled pattern against a concrete path,
// capturing ":param" segments. "*" matches anything.
func matchPattern(pattern, path string) (map[string]string, bool) {
	if pattern == "*" {
		return nil, true
	}

	patSegs := splitPath(pattern)
	pathSegs := splitPath(path)
	if len(patSegs) != len(pathSegs) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range patSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[seg[1:]] = pathSegs[i]
			continue
		}
		if seg != pathSegs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// fillParams substitutes ":param" segments with their values.
func fillParams(pattern string, params map[string]string) string {
	if !strings.Contains(pattern, ":") {
		return pattern
	}
	segs := strings.Split(pattern, "/")
	for i, seg := range segs {
		if strings.HasPrefix(seg, ":") {
			segs[i] = params[seg[1:]]
		}
	}
	return strings.Join(segs, "/")
}

func mergeParams(base, captured map[string]string) map[string]string {
	if len(captured) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(captured))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range captured {
		out[k] = v
	}
	return out
}

// resolvePath resolves a relative path against the current route's
// location. Absolute paths pass through.
func resolvePath(path string, current *route.Route) string {
	if strings.HasPrefix(path, "/") || current == nil {
		return path
	}
	base := current.Path
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[:i]
	}
	if path == "" {
		return current.Path
	}
	return base + "/" + path
}
