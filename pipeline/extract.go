package pipeline

import (
	"sort"

	"github.com/routewise/routewise/route"
)

// Deferred is a post-enter callback waiting for a component instance to
// exist. The transition controller runs it once the slot on the record is
// populated, as long as the owning route is still current.
type Deferred struct {
	Record *route.Record
	Slot   string
	Fn     func(route.Instance)
}

// ExtractGuards collects the guards of the given kind from every component
// slot of every record, flattened into a single ordered queue. Leave and
// update guards bind to the live instance of their slot and are dropped when
// the slot has none; enter guards are extracted regardless, because their
// instance does not exist until after the navigation confirms. reverse flips
// the record order before flattening, so leave guards run deepest first.
func ExtractGuards(records []*route.Record, kind route.Kind, reverse bool) []route.Guard {
	ordered := records
	if reverse {
		ordered = make([]*route.Record, len(records))
		for i, r := range records {
			ordered[len(records)-1-i] = r
		}
	}

	var out []route.Guard
	for _, rec := range ordered {
		for _, slot := range slotNames(rec) {
			comp := rec.Components[slot]
			guards := comp.GuardsFor(kind)
			if len(guards) == 0 {
				continue
			}

			var inst route.Instance
			if kind != route.KindEnter {
				inst = rec.Instances[slot]
				if inst == nil {
					continue
				}
			}
			for _, g := range guards {
				out = append(out, bindGuard(g, inst))
			}
		}
	}
	return out
}

// ExtractEnterGuards collects enter guards from the activated records and
// wraps each so that a deferred resolution is captured into out instead of
// running immediately. Everything else about the resolution is forwarded
// unchanged.
func ExtractEnterGuards(records []*route.Record, out *[]Deferred) []route.Guard {
	var queue []route.Guard
	for _, rec := range records {
		for _, slot := range slotNames(rec) {
			comp := rec.Components[slot]
			for _, g := range comp.GuardsFor(route.KindEnter) {
				queue = append(queue, wrapEnterGuard(g, rec, slot, out))
			}
		}
	}
	return queue
}

// ExtractBeforeEnter collects the record-level beforeEnter guards of the
// activated records, in activation order. These come straight off the record
// and never bind to an instance.
func ExtractBeforeEnter(records []*route.Record) []route.Guard {
	var out []route.Guard
	for _, rec := range records {
		if rec.BeforeEnter != nil {
			out = append(out, rec.BeforeEnter)
		}
	}
	return out
}

func bindGuard(g route.BoundGuard, inst route.Instance) route.Guard {
	return func(to, from *route.Route, next *route.Next) {
		g(inst, to, from, next)
	}
}

func wrapEnterGuard(g route.BoundGuard, rec *route.Record, slot string, out *[]Deferred) route.Guard {
	return func(to, from *route.Route, next *route.Next) {
		inner := route.NewNext(func(res route.Resolution) {
			if res.Action == route.ActionProceed && res.Defer != nil {
				*out = append(*out, Deferred{Record: rec, Slot: slot, Fn: res.Defer})
				res.Defer = nil
			}
			next.Complete(res)
		})
		g(nil, to, from, inner)
	}
}

// slotNames returns a record's component slots in stable order.
func slotNames(rec *route.Record) []string {
	if len(rec.Components) == 0 {
		return nil
	}
	names := make([]string, 0, len(rec.Components))
	for name := range rec.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
