package matcher

import (
	"testing"

	"github.com/routewise/routewise/route"
)

func demoTable() *Table {
	return NewTable([]Config{
		{Path: "/", Name: "home", Component: &route.Component{Name: "home"}},
		{
			Path:      "/users",
			Name:      "users",
			Component: &route.Component{Name: "users"},
			Children: []Config{
				{Path: ":id", Name: "user", Component: &route.Component{Name: "user"}},
			},
		},
		{Path: "/old-users", Redirect: "/users"},
		{Path: "*", Name: "not-found", Component: &route.Component{Name: "not-found"}},
	})
}

func TestTable_MatchStaticPath(t *testing.T) {
	m := demoTable()

	r := m.Match(route.PathLocation("/users"), route.Start)

	if r.Name != "users" {
		t.Fatalf("name = %q", r.Name)
	}
	if len(r.Matched) != 1 {
		t.Fatalf("matched = %d records", len(r.Matched))
	}
}

func TestTable_MatchParamsAndNesting(t *testing.T) {
	m := demoTable()

	r := m.Match(route.PathLocation("/users/42?tab=posts"), route.Start)

	if r.Name != "user" {
		t.Fatalf("name = %q", r.Name)
	}
	if r.Params["id"] != "42" {
		t.Fatalf("params = %v", r.Params)
	}
	if len(r.Matched) != 2 {
		t.Fatalf("expected parent and child matched, got %d", len(r.Matched))
	}
	if r.Matched[0].Path != "/users" {
		t.Fatalf("chain must run root first, got %q", r.Matched[0].Path)
	}
	if r.Query["tab"] != "posts" {
		t.Fatalf("query = %v", r.Query)
	}
}

// The diff contract: unchanged table entries must keep record identity
// across matches.
func TestTable_RecordIdentityStable(t *testing.T) {
	m := demoTable()

	a := m.Match(route.PathLocation("/users/1"), route.Start)
	b := m.Match(route.PathLocation("/users/2"), a)

	if a.Matched[0] != b.Matched[0] {
		t.Fatal("shared ancestor must keep pointer identity across matches")
	}
	if a.Matched[1] != b.Matched[1] {
		t.Fatal("the same table entry must keep pointer identity even when params differ")
	}
	if a.Params["id"] == b.Params["id"] {
		t.Fatal("params must still differ per match")
	}
}

func TestTable_MatchByName(t *testing.T) {
	m := demoTable()

	r := m.Match(route.NamedLocation("user", map[string]string{"id": "7"}), route.Start)

	if r.Path != "/users/7" {
		t.Fatalf("path = %q", r.Path)
	}
	if r.Params["id"] != "7" {
		t.Fatalf("params = %v", r.Params)
	}
}

func TestTable_Redirect(t *testing.T) {
	m := demoTable()

	r := m.Match(route.PathLocation("/old-users?x=1"), route.Start)

	if r.Name != "users" {
		t.Fatalf("redirect landed on %q", r.Name)
	}
	if r.RedirectedFrom == nil || r.RedirectedFrom.Path != "/old-users" {
		t.Fatalf("redirectedFrom = %+v", r.RedirectedFrom)
	}
	if r.Query["x"] != "1" {
		t.Fatal("redirects must carry the original query when the target has none")
	}
}

func TestTable_RedirectCycleGivesUp(t *testing.T) {
	m := NewTable([]Config{
		{Path: "/a", Redirect: "/b"},
		{Path: "/b", Redirect: "/a"},
	})

	r := m.Match(route.PathLocation("/a"), route.Start)

	if len(r.Matched) != 0 {
		t.Fatal("a redirect cycle must resolve to an unmatched route")
	}
}

func TestTable_CatchAll(t *testing.T) {
	m := demoTable()

	r := m.Match(route.PathLocation("/no/such/page"), route.Start)

	if r.Name != "not-found" {
		t.Fatalf("catch-all missed: %q", r.Name)
	}
}

func TestTable_UnmatchedWithoutCatchAll(t *testing.T) {
	m := NewTable([]Config{{Path: "/only", Component: &route.Component{}}})

	r := m.Match(route.PathLocation("/other"), route.Start)

	if len(r.Matched) != 0 {
		t.Fatal("unmatched paths must produce an empty matched chain")
	}
	if r.Path != "/other" {
		t.Fatalf("path = %q", r.Path)
	}
}

func TestTable_RelativePathResolution(t *testing.T) {
	m := demoTable()
	current := m.Match(route.PathLocation("/users/42"), route.Start)

	r := m.Match(route.PathLocation("7"), current)

	if r.Path != "/users/7" {
		t.Fatalf("relative path resolved to %q", r.Path)
	}
}

func TestTable_DeclarationOrderWins(t *testing.T) {
	m := NewTable([]Config{
		{Path: "/users/me", Name: "me", Component: &route.Component{}},
		{Path: "/users/:id", Name: "user", Component: &route.Component{}},
	})

	if r := m.Match(route.PathLocation("/users/me"), route.Start); r.Name != "me" {
		t.Fatalf("static entry declared first must win, got %q", r.Name)
	}
	if r := m.Match(route.PathLocation("/users/42"), route.Start); r.Name != "user" {
		t.Fatalf("param entry must still match, got %q", r.Name)
	}
}
