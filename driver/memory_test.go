package driver

import "testing"

func TestMemory_PushAndCurrent(t *testing.T) {
	m := NewMemory("/")

	m.Push("/a")
	m.Push("/b")

	if got := m.CurrentLocation(); got != "/b" {
		t.Fatalf("current = %q", got)
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d", m.Len())
	}
}

func TestMemory_PushTruncatesForwardEntries(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a")
	m.Push("/b")
	m.Go(-2) // back to "/"

	m.Push("/c")

	if got := m.CurrentLocation(); got != "/c" {
		t.Fatalf("current = %q", got)
	}
	if m.Len() != 2 {
		t.Fatalf("forward tail must be discarded, len = %d", m.Len())
	}
}

func TestMemory_Replace(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a")

	m.Replace("/a2")

	if got := m.CurrentLocation(); got != "/a2" {
		t.Fatalf("current = %q", got)
	}
	if m.Len() != 2 {
		t.Fatal("replace must not grow the history")
	}
}

func TestMemory_GoFiresOnChange(t *testing.T) {
	m := NewMemory("/")
	m.Push("/a")
	m.Push("/b")

	var got []string
	m.OnChange(func(p string) { got = append(got, p) })

	m.Go(-1)
	m.Go(1)

	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Fatalf("onChange log = %v", got)
	}
}

func TestMemory_GoOutOfRangeIgnored(t *testing.T) {
	m := NewMemory("/")
	fired := false
	m.OnChange(func(string) { fired = true })

	m.Go(-1)
	m.Go(5)

	if fired {
		t.Fatal("out-of-range moves must not fire the callback")
	}
	if got := m.CurrentLocation(); got != "/" {
		t.Fatalf("current = %q", got)
	}
}

func TestMemory_EnsureURL(t *testing.T) {
	m := NewMemory("/")
	fired := false
	m.OnChange(func(string) { fired = true })

	m.EnsureURL("/", false) // already there, no-op
	if m.Len() != 1 {
		t.Fatal("matching address must not change the history")
	}

	m.EnsureURL("/a", false) // replace mode
	if got := m.CurrentLocation(); got != "/a" || m.Len() != 1 {
		t.Fatalf("replace reconcile: current = %q len = %d", got, m.Len())
	}

	m.EnsureURL("/b", true) // push mode
	if got := m.CurrentLocation(); got != "/b" || m.Len() != 2 {
		t.Fatalf("push reconcile: current = %q len = %d", got, m.Len())
	}

	if fired {
		t.Fatal("EnsureURL must never fire the change callback")
	}
}
