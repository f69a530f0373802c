package router

import (
	"sync"

	"github.com/routewise/routewise/route"
)

// hookList holds globally registered guards in registration order. Entries
// are addressed by identity so the unregister closure survives reorderings
// caused by other removals.
type hookList struct {
	mu      sync.Mutex
	entries []*hookEntry
}

type hookEntry struct {
	guard route.Guard
}

func (l *hookList) add(g route.Guard) func() {
	e := &hookEntry{guard: g}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, x := range l.entries {
			if x == e {
				l.entries = append(l.entries[:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *hookList) list() []route.Guard {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]route.Guard, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.guard
	}
	return out
}

// afterList is the same registry for after hooks, which observe rather than
// guard and so have no continuation.
type afterList struct {
	mu      sync.Mutex
	entries []*afterEntry
}

type afterEntry struct {
	fn func(to, from *route.Route)
}

func (l *afterList) add(fn func(to, from *route.Route)) func() {
	e := &afterEntry{fn: fn}
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, x := range l.entries {
			if x == e {
				l.entries = append(l.entries[:i], l.entries[i+1:]...)
				return
			}
		}
	}
}

func (l *afterList) list() []func(to, from *route.Route) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]func(to, from *route.Route), len(l.entries))
	for i, e := range l.entries {
		out[i] = e.fn
	}
	return out
}
