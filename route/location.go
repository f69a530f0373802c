package route

import (
	"sort"
	"strings"
)

// Location is a raw navigation target. Either Path or Name identifies the
// destination; Query, Params and Hash refine it. Locations are ephemeral:
// the matcher consumes one and produces a Route snapshot.
type Location struct {
	Path    string
	Name    string
	Hash    string
	Query   map[string]string
	Params  map[string]string
	Replace bool
}

// PathLocation is shorthand for a plain path target.
func PathLocation(path string) Location {
	return ParseLocation(path)
}

// NamedLocation is shorthand for a named target with params.
func NamedLocation(name string, params map[string]string) Location {
	return Location{Name: name, Params: params}
}

// ParseLocation splits a raw address into path, query and hash parts.
// Encoding rules are out of scope here; values are taken verbatim.
func ParseLocation(raw string) Location {
	loc := Location{}

	if i := strings.Index(raw, "#"); i >= 0 {
		loc.Hash = raw[i+1:]
		raw = raw[:i]
	}

	if i := strings.Index(raw, "?"); i >= 0 {
		loc.Query = ParseQuery(raw[i+1:])
		raw = raw[:i]
	}

	loc.Path = raw
	return loc
}

// ParseQuery parses a "k=v&k2=v2" string into a map. Keys without a value
// map to the empty string. Later duplicates win.
func ParseQuery(qs string) map[string]string {
	if qs == "" {
		return nil
	}
	query := make(map[string]string)
	for _, pair := range strings.Split(qs, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		query[k] = v
	}
	return query
}

// StringifyQuery renders a query map in stable key order, with a leading
// "?" when non-empty.
func StringifyQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		if v := query[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	return b.String()
}

// FullPath assembles the complete address for the location: path, stable
// query string, then hash.
func (l Location) FullPath() string {
	var b strings.Builder
	b.WriteString(l.Path)
	b.WriteString(StringifyQuery(l.Query))
	if l.Hash != "" {
		b.WriteByte('#')
		b.WriteString(l.Hash)
	}
	return b.String()
}
