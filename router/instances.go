package router

import (
	"time"

	"go.uber.org/zap"

	"github.com/routewise/routewise/pipeline"
	"github.com/routewise/routewise/route"
)

// pollInterval is the retry tick for post-enter callbacks whose instance
// registration the host never signals.
const pollInterval = 16 * time.Millisecond

// RegisterInstance records a live component instance on its record slot and
// wakes every post-enter callback waiting for one. The rendering
// collaborator calls this as components mount.
func (r *Router) RegisterInstance(rec *route.Record, slot string, inst route.Instance) {
	r.instMu.Lock()
	if rec.Instances == nil {
		rec.Instances = make(map[string]route.Instance)
	}
	rec.Instances[slot] = inst
	ch := r.instCh
	r.instCh = make(chan struct{})
	r.instMu.Unlock()

	close(ch)
}

// UnregisterInstance clears a record slot as its component unmounts.
func (r *Router) UnregisterInstance(rec *route.Record, slot string) {
	r.instMu.Lock()
	defer r.instMu.Unlock()
	delete(rec.Instances, slot)
}

// awaitInstance delivers one post-enter callback once its slot holds a live
// instance. The wait is bounded by staleness: as soon as the owning route
// stops being current the callback is abandoned silently.
func (r *Router) awaitInstance(d pipeline.Deferred, owner *route.Route) {
	for {
		if r.CurrentRoute() != owner {
			Logger().Debug("post-enter callback abandoned",
				zap.String("slot", d.Slot),
				zap.String("record", d.Record.Path))
			return
		}

		r.instMu.Lock()
		inst := d.Record.Instances[d.Slot]
		ch := r.instCh
		r.instMu.Unlock()

		if inst != nil && !inst.Destroyed() {
			d.Fn(inst)
			return
		}

		select {
		case <-ch:
		case <-time.After(pollInterval):
		}
	}
}
