package route

// Instance is a live rendered component. The rendering collaborator creates
// instances after a navigation is confirmed and registers them on the owning
// record; the engine only ever reads the lookup. Destroyed reports whether
// the instance is mid-teardown, in which case post-enter callbacks keep
// waiting for a replacement.
type Instance interface {
	Destroyed() bool
}

// PropsFunc resolves the props passed to one component slot from the
// confirmed route.
type PropsFunc func(r *Route) map[string]any

// Record is one compiled entry of the route table. Records are created once
// by the matcher and shared by identity across every Route that matches
// them; DiffRecords depends on that identity.
//
// Instances is mutable shared state: the rendering collaborator writes it as
// components mount and unmount. All writes must go through the transition
// controller's RegisterInstance/UnregisterInstance so that waiting
// post-enter callbacks are woken up.
type Record struct {
	Path        string
	Name        string
	Parent      *Record
	Components  map[string]*Component
	BeforeEnter Guard
	Props       map[string]PropsFunc
	Instances   map[string]Instance
	Meta        map[string]any

	// Redirect, when set, makes the matcher re-resolve to the target
	// instead of producing a route for this record.
	Redirect *Location
}

// DefaultSlot is the component slot used when a record has a single unnamed
// component.
const DefaultSlot = "default"

// Component is the definition of one renderable unit attached to a record
// slot. Guards holds the lifecycle guards registered per kind, in
// registration order. New is the factory the rendering collaborator uses to
// create the live instance after navigation confirms.
//
// A lazily loaded definition has Loader set and everything else zero; the
// pipeline resolves it in place before enter guards run.
type Component struct {
	Name   string
	Guards map[Kind][]BoundGuard
	New    func() Instance
	Loader func() (*Component, error)
}

// Guard registers a lifecycle guard on the component and returns the
// component for chaining.
func (c *Component) Guard(kind Kind, g BoundGuard) *Component {
	if c.Guards == nil {
		c.Guards = make(map[Kind][]BoundGuard)
	}
	c.Guards[kind] = append(c.Guards[kind], g)
	return c
}

// GuardsFor returns the guards registered under kind, in registration order.
func (c *Component) GuardsFor(kind Kind) []BoundGuard {
	return c.Guards[kind]
}
