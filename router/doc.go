// Package router implements the navigation transition controller.
//
// The Router owns the committed route and at most one pending transition.
// Every navigation, programmatic or reported by the location driver, runs
// the same protocol: the matcher resolves the target, the matched chains
// are diffed into updated, activated and deactivated segments, and the
// guard pipeline runs in a fixed order before the route commits:
//
//  1. leave guards of deactivated records, deepest component first
//  2. global before hooks, registration order
//  3. update guards of records kept across the transition
//  4. record-level beforeEnter guards of activated records
//  5. lazy component resolution for activated records
//  6. enter guards of activated records
//  7. global resolve hooks, registration order
//
// Any guard can abort, fail or redirect the navigation through its
// completion handle. A newer navigation supersedes an in-flight one: the
// stale pipeline notices at its next guard boundary and aborts with a
// cancelled error, so the superseded transition can never commit.
//
// Basic wiring:
//
//	table := matcher.NewTable(configs)
//	r := router.New(table, driver.NewMemory("/"))
//	r.Listen(func(rt *route.Route) { render(rt) })
//	r.Push(route.PathLocation("/users/42"), nil, nil)
//
// The package logger is a no-op by default; install one with SetLogger to
// see unhandled navigation errors and transition traces.
package router
