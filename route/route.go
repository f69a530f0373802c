package route

// Route is an immutable snapshot of one resolved navigation. Matched lists
// the matched record ancestry from root to leaf; it is empty when nothing
// matched. Routes are compared structurally (IsSameRoute), never by
// identity, except for the Start sentinel.
type Route struct {
	Name           string
	Path           string
	FullPath       string
	Hash           string
	Query          map[string]string
	Params         map[string]string
	Matched        []*Record
	RedirectedFrom *Location
}

// Start is the sentinel route in place before any navigation has occurred.
// It has an empty matched chain and is only ever equal to itself.
var Start = NewRoute(nil, Location{Path: "/"}, nil)

// NewRoute builds the route snapshot for a matched leaf record. The matched
// chain is assembled by walking parent back-references, root first. A nil
// record produces a route with no matched segments (an unmatched path).
func NewRoute(rec *Record, loc Location, redirectedFrom *Location) *Route {
	var matched []*Record
	for r := rec; r != nil; r = r.Parent {
		matched = append([]*Record{r}, matched...)
	}

	var name string
	if rec != nil {
		name = rec.Name
	}

	return &Route{
		Name:           name,
		Path:           loc.Path,
		FullPath:       loc.FullPath(),
		Hash:           loc.Hash,
		Query:          copyMap(loc.Query),
		Params:         copyMap(loc.Params),
		Matched:        matched,
		RedirectedFrom: redirectedFrom,
	}
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
