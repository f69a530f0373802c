package route

import "testing"

func chain(records ...*Record) []*Record { return records }

func TestDiffRecords_SharedPrefix(t *testing.T) {
	root := &Record{Path: "/"}
	a := &Record{Path: "/a", Parent: root}
	b := &Record{Path: "/a/b", Parent: a}
	c := &Record{Path: "/a/c", Parent: a}

	updated, activated, deactivated := DiffRecords(chain(root, a, b), chain(root, a, c))

	if len(updated) != 2 || updated[0] != root || updated[1] != a {
		t.Fatalf("expected [root a] updated, got %d records", len(updated))
	}
	if len(activated) != 1 || activated[0] != c {
		t.Fatalf("expected [c] activated, got %d records", len(activated))
	}
	if len(deactivated) != 1 || deactivated[0] != b {
		t.Fatalf("expected [b] deactivated, got %d records", len(deactivated))
	}
}

func TestDiffRecords_Identical(t *testing.T) {
	root := &Record{Path: "/"}
	a := &Record{Path: "/a", Parent: root}

	updated, activated, deactivated := DiffRecords(chain(root, a), chain(root, a))

	if len(updated) != 2 {
		t.Fatalf("expected the full chain updated, got %d", len(updated))
	}
	if len(activated) != 0 || len(deactivated) != 0 {
		t.Fatal("identical chains must activate and deactivate nothing")
	}
}

func TestDiffRecords_Disjoint(t *testing.T) {
	a := &Record{Path: "/a"}
	b := &Record{Path: "/b"}

	updated, activated, deactivated := DiffRecords(chain(a), chain(b))

	if len(updated) != 0 {
		t.Fatal("disjoint chains must share no updated records")
	}
	if len(activated) != 1 || activated[0] != b {
		t.Fatal("expected only the new chain activated")
	}
	if len(deactivated) != 1 || deactivated[0] != a {
		t.Fatal("expected only the old chain deactivated")
	}
}

func TestDiffRecords_EmptyCurrent(t *testing.T) {
	a := &Record{Path: "/a"}
	b := &Record{Path: "/a/b", Parent: a}

	updated, activated, deactivated := DiffRecords(nil, chain(a, b))

	if len(updated) != 0 || len(deactivated) != 0 {
		t.Fatal("first navigation must only activate")
	}
	if len(activated) != 2 {
		t.Fatalf("expected 2 activated records, got %d", len(activated))
	}
}

// The partition property: updated ++ activated reassembles next.matched, and
// updated ++ deactivated reassembles current.matched, with no overlap.
func TestDiffRecords_Partition(t *testing.T) {
	root := &Record{Path: "/"}
	a := &Record{Path: "/a", Parent: root}
	b := &Record{Path: "/a/b", Parent: a}
	x := &Record{Path: "/x", Parent: root}

	current := chain(root, a, b)
	next := chain(root, x)

	updated, activated, deactivated := DiffRecords(current, next)

	if len(updated)+len(activated) != len(next) {
		t.Fatal("updated ++ activated must cover next")
	}
	for i, r := range updated {
		if next[i] != r || current[i] != r {
			t.Fatal("updated records must be shared by both chains at the same index")
		}
	}
	for i, r := range activated {
		if next[len(updated)+i] != r {
			t.Fatal("activated must be the suffix of next")
		}
	}
	for i, r := range deactivated {
		if current[len(updated)+i] != r {
			t.Fatal("deactivated must be the suffix of current")
		}
	}
}
