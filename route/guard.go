package route

import (
	"fmt"

	"go.uber.org/atomic"
)

// Kind tags the lifecycle stage a component guard belongs to.
type Kind int

const (
	// KindLeave guards run on deactivated records, deepest first, bound to
	// the live instance that is about to unmount.
	KindLeave Kind = iota
	// KindUpdate guards run on records kept across the transition, bound to
	// the live instance.
	KindUpdate
	// KindEnter guards run on activated records after all other checks.
	// They are extracted without an instance; the instance does not exist
	// until after the navigation confirms.
	KindEnter
)

func (k Kind) String() string {
	switch k {
	case KindLeave:
		return "leave"
	case KindUpdate:
		return "update"
	case KindEnter:
		return "enter"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Guard is a single asynchronous checkpoint in the transition pipeline.
// It must resolve next exactly once, possibly after arbitrary delay.
type Guard func(to, from *Route, next *Next)

// BoundGuard is a component-level guard. Leave and update guards receive the
// live instance they are bound to; enter guards receive nil and can reach
// their instance later through next.Defer.
type BoundGuard func(inst Instance, to, from *Route, next *Next)

// Action classifies how a guard resolved.
type Action int

const (
	// ActionProceed continues to the next guard.
	ActionProceed Action = iota
	// ActionAbort stops the navigation silently.
	ActionAbort
	// ActionFail stops the navigation with an error.
	ActionFail
	// ActionRedirect stops the navigation and starts a new one.
	ActionRedirect
)

// Resolution is the tagged outcome a guard delivers through its Next handle.
type Resolution struct {
	Action Action
	Err    error           // ActionFail
	Target *Location       // ActionRedirect
	Defer  func(Instance)  // ActionProceed, enter guards only
}

// Next is the single-use completion handle handed to a guard. Exactly one of
// its resolution methods must be called; a second call panics, and never
// calling one leaves the navigation pending forever.
type Next struct {
	consumed atomic.Bool
	deliver  func(Resolution)
}

// NewNext wraps a delivery function in a single-use handle.
func NewNext(deliver func(Resolution)) *Next {
	return &Next{deliver: deliver}
}

// Proceed continues the navigation.
func (n *Next) Proceed() {
	n.Complete(Resolution{Action: ActionProceed})
}

// Abort stops the navigation silently. Error listeners are not notified.
func (n *Next) Abort() {
	n.Complete(Resolution{Action: ActionAbort})
}

// Fail stops the navigation and reports err to error listeners.
func (n *Next) Fail(err error) {
	n.Complete(Resolution{Action: ActionFail, Err: err})
}

// Redirect stops the navigation and starts a new one at loc. When
// loc.Replace is set the redirect replaces the current history entry.
func (n *Next) Redirect(loc Location) {
	n.Complete(Resolution{Action: ActionRedirect, Target: &loc})
}

// Defer proceeds and queues cb to run once the owning component instance
// exists. Only meaningful on enter guards; elsewhere the callback is
// dropped.
func (n *Next) Defer(cb func(Instance)) {
	n.Complete(Resolution{Action: ActionProceed, Defer: cb})
}

// Resolve classifies a raw resolution value:
//
//	nil, true            proceed
//	false                abort
//	error                fail
//	string, Location     redirect
//	func(Instance)       proceed with a deferred post-enter callback
//	anything else        proceed
func (n *Next) Resolve(v any) {
	switch t := v.(type) {
	case nil:
		n.Proceed()
	case bool:
		if t {
			n.Proceed()
		} else {
			n.Abort()
		}
	case error:
		n.Fail(t)
	case string:
		n.Redirect(ParseLocation(t))
	case Location:
		n.Redirect(t)
	case *Location:
		n.Redirect(*t)
	case func(Instance):
		n.Defer(t)
	default:
		n.Proceed()
	}
}

// Consumed reports whether the handle has been resolved.
func (n *Next) Consumed() bool {
	return n.consumed.Load()
}

// Complete delivers a resolution directly. Used by pipeline wrappers that
// forward a resolution from an inner handle to an outer one.
func (n *Next) Complete(res Resolution) {
	if !n.consumed.CompareAndSwap(false, true) {
		panic("route: guard resolved its continuation twice")
	}
	n.deliver(res)
}
