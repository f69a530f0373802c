package router

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/routewise/routewise/driver"
	"github.com/routewise/routewise/errors"
	"github.com/routewise/routewise/matcher"
	"github.com/routewise/routewise/route"
)

// Router is the navigation transition controller. It owns the committed
// route, at most one pending transition, the global hook registries and the
// ready/error callback registries. All navigation, programmatic or driver
// triggered, funnels through TransitionTo.
type Router struct {
	matcher matcher.Matcher
	driver  driver.Driver

	mu      sync.Mutex
	current *route.Route
	pending *route.Route

	before  hookList
	resolve hookList
	after   afterList

	listener func(*route.Route)
	deferFn  func(func())

	ready      atomic.Bool
	readyMu    sync.Mutex
	readyRoute *route.Route
	readyErr   error
	readyCbs   []func(*route.Route)
	readyErrs  []func(error)

	errMu    sync.Mutex
	errorCbs []func(error)

	instMu sync.Mutex
	instCh chan struct{}
}

// Option configures a Router.
type Option func(*Router)

// WithDefer supplies the scheduling hook used to delay post-enter callbacks
// to the host's next update cycle. The default runs them on a fresh
// goroutine immediately after commit.
func WithDefer(fn func(func())) Option {
	return func(r *Router) { r.deferFn = fn }
}

// New creates a router on top of a matcher and a location driver. External
// address changes reported by the driver start transitions automatically.
func New(m matcher.Matcher, d driver.Driver, opts ...Option) *Router {
	r := &Router{
		matcher: m,
		driver:  d,
		current: route.Start,
		deferFn: func(fn func()) { go fn() },
		instCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	d.OnChange(func(fullPath string) {
		r.TransitionTo(route.ParseLocation(fullPath), nil, nil)
	})
	return r
}

// CurrentRoute returns the last committed route. Before any navigation this
// is the route.Start sentinel.
func (r *Router) CurrentRoute() *route.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Listen sets the single route-change listener the rendering collaborator
// uses to re-render. Last writer wins.
func (r *Router) Listen(fn func(*route.Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listener = fn
}

// BeforeEach registers a global guard that runs before every transition,
// after leave guards. Returns the unregister function.
func (r *Router) BeforeEach(g route.Guard) func() {
	return r.before.add(g)
}

// BeforeResolve registers a global guard that runs after enter guards, last
// before commit. Returns the unregister function.
func (r *Router) BeforeResolve(g route.Guard) func() {
	return r.resolve.add(g)
}

// AfterEach registers an observer invoked after every commit with the new
// and previous routes. Returns the unregister function.
func (r *Router) AfterEach(fn func(to, from *route.Route)) func() {
	return r.after.add(fn)
}

// OnError registers a listener for real navigation failures. Silent
// outcomes (duplicated, aborted, cancelled, redirected) never reach it.
func (r *Router) OnError(cb func(error)) {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	r.errorCbs = append(r.errorCbs, cb)
}

// OnReady queues cb to run once the very first transition completes
// successfully, or errCb if it fails with a real error. After that first
// completion, late registrations fire immediately with the recorded
// outcome.
func (r *Router) OnReady(cb func(*route.Route), errCb func(error)) {
	r.readyMu.Lock()
	if !r.ready.Load() {
		if cb != nil {
			r.readyCbs = append(r.readyCbs, cb)
		}
		if errCb != nil {
			r.readyErrs = append(r.readyErrs, errCb)
		}
		r.readyMu.Unlock()
		return
	}
	rt, err := r.readyRoute, r.readyErr
	r.readyMu.Unlock()

	if err != nil {
		if errCb != nil {
			errCb(err)
		}
		return
	}
	if cb != nil {
		cb(rt)
	}
}

// Push navigates to loc, appending a history entry once the transition
// confirms. Callbacks may be nil.
func (r *Router) Push(loc route.Location, onComplete func(*route.Route), onAbort func(error)) {
	r.TransitionTo(loc, func(rt *route.Route) {
		r.driver.Push(rt.FullPath)
		if onComplete != nil {
			onComplete(rt)
		}
	}, onAbort)
}

// Replace navigates to loc, swapping the current history entry once the
// transition confirms. Callbacks may be nil.
func (r *Router) Replace(loc route.Location, onComplete func(*route.Route), onAbort func(error)) {
	r.TransitionTo(loc, func(rt *route.Route) {
		r.driver.Replace(rt.FullPath)
		if onComplete != nil {
			onComplete(rt)
		}
	}, onAbort)
}

// Go moves through the driver's history; the landing address comes back as
// an external change and starts a transition.
func (r *Router) Go(delta int) { r.driver.Go(delta) }

// Back is Go(-1).
func (r *Router) Back() { r.Go(-1) }

// Forward is Go(1).
func (r *Router) Forward() { r.Go(1) }

// TransitionTo resolves loc through the matcher and runs the full guard
// pipeline against the candidate route. Exactly one of onComplete and
// onAbort is invoked per call. Either may be nil.
func (r *Router) TransitionTo(loc route.Location, onComplete func(*route.Route), onAbort func(error)) {
	current := r.CurrentRoute()
	target := r.matcher.Match(loc, current)

	r.confirmTransition(target, func() {
		r.commit(target)
		if onComplete != nil {
			onComplete(target)
		}
		r.driver.EnsureURL(target.FullPath, false)
		r.flushReady(target, nil)
	}, func(err error) {
		if onAbort != nil {
			onAbort(err)
		}
		if err != nil && !errors.IsSilent(err) {
			r.flushReady(nil, err)
		}
	})
}

// commit swaps the committed route and notifies the listener and after
// hooks. This is the only place current is reassigned.
func (r *Router) commit(target *route.Route) {
	r.mu.Lock()
	prev := r.current
	r.current = target
	listener := r.listener
	r.mu.Unlock()

	Logger().Debug("navigation committed",
		zap.String("from", prev.FullPath),
		zap.String("to", target.FullPath))

	if listener != nil {
		listener(target)
	}
	for _, fn := range r.after.list() {
		fn(target, prev)
	}
}

// flushReady records the first-ever transition outcome and runs the matching
// callback list exactly once.
func (r *Router) flushReady(rt *route.Route, err error) {
	r.readyMu.Lock()
	if !r.ready.CompareAndSwap(false, true) {
		r.readyMu.Unlock()
		return
	}
	r.readyRoute, r.readyErr = rt, err
	cbs, errCbs := r.readyCbs, r.readyErrs
	r.readyCbs, r.readyErrs = nil, nil
	r.readyMu.Unlock()

	if err != nil {
		for _, cb := range errCbs {
			cb(err)
		}
		return
	}
	for _, cb := range cbs {
		cb(rt)
	}
}

// dispatchError forwards a real navigation failure to the registered error
// listeners, or logs it when none exist so a missing handler never crashes
// the host.
func (r *Router) dispatchError(err error) {
	r.errMu.Lock()
	cbs := make([]func(error), len(r.errorCbs))
	copy(cbs, r.errorCbs)
	r.errMu.Unlock()

	if len(cbs) == 0 {
		Logger().Warn("unhandled navigation error", zap.Error(err))
		return
	}
	for _, cb := range cbs {
		cb(err)
	}
}

func (r *Router) pendingRoute() *route.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}
