package pipeline

import (
	"testing"

	"github.com/routewise/routewise/route"
)

type fakeInstance struct {
	name      string
	destroyed bool
}

func (f *fakeInstance) Destroyed() bool { return f.destroyed }

func recordWithGuard(kind route.Kind, log *[]string, label string) *route.Record {
	comp := (&route.Component{}).Guard(kind, func(inst route.Instance, to, from *route.Route, next *route.Next) {
		*log = append(*log, label)
		next.Proceed()
	})
	return &route.Record{
		Components: map[string]*route.Component{route.DefaultSlot: comp},
		Instances:  map[string]route.Instance{route.DefaultSlot: &fakeInstance{name: label}},
	}
}

func runAll(t *testing.T, queue []route.Guard) {
	t.Helper()
	RunQueue(queue, func(g route.Guard, next func(bool)) {
		g(nil, nil, route.NewNext(func(res route.Resolution) {
			next(res.Action == route.ActionProceed)
		}))
	}, func() {})
}

func TestExtractGuards_LeaveReversed(t *testing.T) {
	var log []string
	parent := recordWithGuard(route.KindLeave, &log, "parent")
	child := recordWithGuard(route.KindLeave, &log, "child")

	// Deactivated records arrive root-first; leave guards must ask the
	// deepest component first.
	queue := ExtractGuards([]*route.Record{parent, child}, route.KindLeave, true)
	runAll(t, queue)

	if len(log) != 2 || log[0] != "child" || log[1] != "parent" {
		t.Fatalf("leave order = %v, want [child parent]", log)
	}
}

func TestExtractGuards_UpdateForwardOrder(t *testing.T) {
	var log []string
	a := recordWithGuard(route.KindUpdate, &log, "a")
	b := recordWithGuard(route.KindUpdate, &log, "b")

	queue := ExtractGuards([]*route.Record{a, b}, route.KindUpdate, false)
	runAll(t, queue)

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Fatalf("update order = %v, want [a b]", log)
	}
}

func TestExtractGuards_DroppedWithoutInstance(t *testing.T) {
	var log []string
	rec := recordWithGuard(route.KindLeave, &log, "orphan")
	rec.Instances = map[string]route.Instance{} // never rendered

	queue := ExtractGuards([]*route.Record{rec}, route.KindLeave, true)

	if len(queue) != 0 {
		t.Fatal("leave guards without a live instance must be dropped")
	}
}

func TestExtractGuards_BindsInstance(t *testing.T) {
	inst := &fakeInstance{name: "bound"}
	var got route.Instance
	comp := (&route.Component{}).Guard(route.KindLeave, func(i route.Instance, to, from *route.Route, next *route.Next) {
		got = i
		next.Proceed()
	})
	rec := &route.Record{
		Components: map[string]*route.Component{route.DefaultSlot: comp},
		Instances:  map[string]route.Instance{route.DefaultSlot: inst},
	}

	runAll(t, ExtractGuards([]*route.Record{rec}, route.KindLeave, false))

	if got != inst {
		t.Fatal("guard must receive the live instance of its slot")
	}
}

func TestExtractEnterGuards_KeptWithoutInstance(t *testing.T) {
	var log []string
	comp := (&route.Component{}).Guard(route.KindEnter, func(inst route.Instance, to, from *route.Route, next *route.Next) {
		if inst != nil {
			t.Fatal("enter guards run before any instance exists")
		}
		log = append(log, "enter")
		next.Proceed()
	})
	rec := &route.Record{Components: map[string]*route.Component{route.DefaultSlot: comp}}

	var deferred []Deferred
	runAll(t, ExtractEnterGuards([]*route.Record{rec}, &deferred))

	if len(log) != 1 {
		t.Fatal("enter guard must run even with no instance registered")
	}
}

func TestExtractEnterGuards_CapturesDeferred(t *testing.T) {
	ran := false
	comp := (&route.Component{}).Guard(route.KindEnter, func(inst route.Instance, to, from *route.Route, next *route.Next) {
		next.Defer(func(route.Instance) { ran = true })
	})
	rec := &route.Record{Components: map[string]*route.Component{route.DefaultSlot: comp}}

	var deferred []Deferred
	proceeded := false
	queue := ExtractEnterGuards([]*route.Record{rec}, &deferred)
	queue[0](nil, nil, route.NewNext(func(res route.Resolution) {
		proceeded = res.Action == route.ActionProceed
		if res.Defer != nil {
			t.Fatal("the deferred callback must not leak to the outer resolution")
		}
	}))

	if !proceeded {
		t.Fatal("a deferred resolution still proceeds")
	}
	if ran {
		t.Fatal("the deferred callback must not run during the pipeline")
	}
	if len(deferred) != 1 || deferred[0].Record != rec || deferred[0].Slot != route.DefaultSlot {
		t.Fatalf("deferred callback captured wrong: %+v", deferred)
	}
}

func TestExtractEnterGuards_ForwardsAbort(t *testing.T) {
	comp := (&route.Component{}).Guard(route.KindEnter, func(inst route.Instance, to, from *route.Route, next *route.Next) {
		next.Abort()
	})
	rec := &route.Record{Components: map[string]*route.Component{route.DefaultSlot: comp}}

	var deferred []Deferred
	var got route.Action
	queue := ExtractEnterGuards([]*route.Record{rec}, &deferred)
	queue[0](nil, nil, route.NewNext(func(res route.Resolution) { got = res.Action }))

	if got != route.ActionAbort {
		t.Fatal("non-deferred resolutions must pass through unchanged")
	}
}

func TestExtractBeforeEnter(t *testing.T) {
	var log []string
	mk := func(label string) *route.Record {
		return &route.Record{BeforeEnter: func(to, from *route.Route, next *route.Next) {
			log = append(log, label)
			next.Proceed()
		}}
	}

	queue := ExtractBeforeEnter([]*route.Record{mk("a"), {}, mk("b")})
	runAll(t, queue)

	if len(queue) != 2 {
		t.Fatalf("records without beforeEnter must be skipped, got %d guards", len(queue))
	}
	if log[0] != "a" || log[1] != "b" {
		t.Fatalf("beforeEnter order = %v", log)
	}
}

func TestExtractGuards_MultipleSlotOrderStable(t *testing.T) {
	var log []string
	mkComp := func(label string) *route.Component {
		return (&route.Component{}).Guard(route.KindUpdate, func(inst route.Instance, to, from *route.Route, next *route.Next) {
			log = append(log, label)
			next.Proceed()
		})
	}
	rec := &route.Record{
		Components: map[string]*route.Component{
			"sidebar": mkComp("sidebar"),
			"main":    mkComp("main"),
		},
		Instances: map[string]route.Instance{
			"sidebar": &fakeInstance{},
			"main":    &fakeInstance{},
		},
	}

	for i := 0; i < 10; i++ {
		log = nil
		runAll(t, ExtractGuards([]*route.Record{rec}, route.KindUpdate, false))
		if len(log) != 2 || log[0] != "main" || log[1] != "sidebar" {
			t.Fatalf("slot order must be stable, got %v", log)
		}
	}
}
