// Package route defines the navigation data model shared by the matcher,
// the guard pipeline, and the transition controller.
//
// A Location is a raw navigation target (a path string or a structured
// descriptor). The matcher resolves a Location into an immutable Route
// snapshot whose Matched field lists the Record ancestry from root to leaf.
// Records are the compiled route-table entries; the matcher returns the same
// *Record pointers for unchanged ancestors, which is what DiffRecords relies
// on to partition a transition into updated, activated and deactivated
// segments.
//
// Guards are single-shot asynchronous checkpoints. A guard receives the
// target and previous routes plus a Next completion handle, and must resolve
// the handle exactly once:
//
//	func confirmLeave(inst route.Instance, to, from *route.Route, next *route.Next) {
//	    if hasUnsavedChanges(inst) {
//	        next.Abort()
//	        return
//	    }
//	    next.Proceed()
//	}
//
// Resolving a handle twice panics. A guard that never resolves leaves the
// navigation pending forever; that is a caller contract the engine does not
// police.
package route
