package router

import (
	"fmt"

	"github.com/routewise/routewise/errors"
	"github.com/routewise/routewise/pipeline"
	"github.com/routewise/routewise/route"
)

// confirmTransition runs the guard protocol against the candidate route.
// Exactly one of onSuccess and onAbort fires. The pipeline order is fixed:
// leave guards of the deactivated records (deepest first), global before
// hooks, update guards, record-level beforeEnter guards, lazy component
// resolution, then enter guards and global resolve hooks in a second queue.
func (r *Router) confirmTransition(target *route.Route, onSuccess func(), onAbort func(error)) {
	r.mu.Lock()
	current := r.current
	r.mu.Unlock()

	abort := func(err error) {
		// pending clears exactly once per transition, on commit or here.
		// A newer transition's pending must not be clobbered.
		r.mu.Lock()
		if r.pending == target {
			r.pending = nil
		}
		r.mu.Unlock()

		if err != nil && !errors.IsSilent(err) {
			r.dispatchError(err)
		}
		if onAbort != nil {
			onAbort(err)
		}
	}

	// A navigation to the committed route is a no-op, unless the matched
	// chain changed length underneath an unchanged address (the route
	// table grew dynamically).
	if route.IsSameRoute(current, target) && len(current.Matched) == len(target.Matched) {
		r.driver.EnsureURL(current.FullPath, false)
		abort(errors.Duplicated(current.FullPath, target.FullPath))
		return
	}

	updated, activated, deactivated := route.DiffRecords(current.Matched, target.Matched)

	queue := pipeline.ExtractGuards(deactivated, route.KindLeave, true)
	queue = append(queue, r.before.list()...)
	queue = append(queue, pipeline.ExtractGuards(updated, route.KindUpdate, false)...)
	queue = append(queue, pipeline.ExtractBeforeEnter(activated)...)
	queue = append(queue, pipeline.ResolveComponents(activated))

	r.mu.Lock()
	r.pending = target
	r.mu.Unlock()

	iter := func(g route.Guard, next func(bool)) {
		// A newer transition owns pending now; die at this guard boundary.
		if r.pendingRoute() != target {
			abort(errors.Cancelled(current.FullPath, target.FullPath))
			return
		}

		nx := route.NewNext(func(res route.Resolution) {
			switch res.Action {
			case route.ActionAbort:
				r.driver.EnsureURL(current.FullPath, false)
				abort(errors.Aborted(current.FullPath, target.FullPath))
			case route.ActionFail:
				r.driver.EnsureURL(current.FullPath, false)
				abort(r.asGuardFailure(current, target, res.Err))
			case route.ActionRedirect:
				abort(errors.Redirected(current.FullPath, target.FullPath, res.Target.FullPath()))
				if res.Target.Replace {
					r.Replace(*res.Target, nil, nil)
				} else {
					r.Push(*res.Target, nil, nil)
				}
			default:
				next(true)
			}
		})
		r.invokeGuard(g, target, current, nx, abort)
	}

	pipeline.RunQueue(queue, iter, func() {
		var deferred []pipeline.Deferred
		second := pipeline.ExtractEnterGuards(activated, &deferred)
		second = append(second, r.resolve.list()...)

		pipeline.RunQueue(second, iter, func() {
			r.mu.Lock()
			if r.pending != target {
				r.mu.Unlock()
				abort(errors.Cancelled(current.FullPath, target.FullPath))
				return
			}
			r.pending = nil
			r.mu.Unlock()

			onSuccess()

			if len(deferred) > 0 {
				r.deferFn(func() {
					for _, d := range deferred {
						go r.awaitInstance(d, target)
					}
				})
			}
		})
	})
}

// invokeGuard calls a guard, converting a synchronous panic into an
// abort-with-error. A panic after the guard already resolved is a caller
// contract violation and propagates.
func (r *Router) invokeGuard(g route.Guard, to, from *route.Route, nx *route.Next, abort func(error)) {
	defer func() {
		if rec := recover(); rec != nil {
			if nx.Consumed() {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("guard panic: %v", rec)
			}
			r.driver.EnsureURL(from.FullPath, false)
			abort(errors.GuardFailure(from.FullPath, to.FullPath, err))
		}
	}()
	g(to, from, nx)
}

// asGuardFailure keeps already-classified navigation errors intact and
// wraps everything else.
func (r *Router) asGuardFailure(current, target *route.Route, err error) error {
	if errors.IsNavigationFailure(err) {
		return err
	}
	return errors.GuardFailure(current.FullPath, target.FullPath, err)
}
