package pipeline

import (
	"sync"

	"github.com/routewise/routewise/errors"
	"github.com/routewise/routewise/route"
)

// ResolveComponents returns the pipeline step that loads every lazy
// component definition referenced by the activated records, replacing each
// in place once its loader returns. The step proceeds when all loads finish
// and fails the navigation with the first loader error otherwise. Loads run
// concurrently; the continuation is resolved exactly once, after the last
// one lands.
func ResolveComponents(records []*route.Record) route.Guard {
	type pending struct {
		rec  *route.Record
		slot string
	}

	var lazy []pending
	for _, rec := range records {
		for _, slot := range slotNames(rec) {
			if rec.Components[slot].Loader != nil {
				lazy = append(lazy, pending{rec: rec, slot: slot})
			}
		}
	}

	return func(to, from *route.Route, next *route.Next) {
		if len(lazy) == 0 {
			next.Proceed()
			return
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		for _, p := range lazy {
			wg.Add(1)
			go func(p pending) {
				defer wg.Done()
				loaded, err := p.rec.Components[p.slot].Loader()

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				if loaded.Name == "" {
					loaded.Name = p.slot
				}
				p.rec.Components[p.slot] = loaded
			}(p)
		}

		go func() {
			wg.Wait()
			if firstErr != nil {
				next.Fail(errors.ResolveFailure(fullPathOf(from), fullPathOf(to), firstErr))
				return
			}
			next.Proceed()
		}()
	}
}

func fullPathOf(r *route.Route) string {
	if r == nil {
		return ""
	}
	return r.FullPath
}
