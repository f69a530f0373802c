// Package routewise implements a client-side navigation engine: a route
// table, an asynchronous guard pipeline and a transition controller with
// abort, redirect and supersession semantics.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct
// responsibilities:
//
//	routewise/           Root package documentation
//	├── router/          Transition controller, hook and ready registries
//	├── matcher/         Route table compilation and location matching
//	├── pipeline/        Guard extraction, ordering and queue execution
//	├── route/           Route snapshots, locations, guards, equality
//	├── driver/          History drivers (address source and sink)
//	└── errors/          Structured navigation failure types
//
// # Quick Start
//
// Compile a table, attach a driver and navigate:
//
//	table := matcher.NewTable([]matcher.Config{
//	    {Path: "/", Component: &route.Component{Name: "Home"}},
//	    {Path: "/users/:id", Component: &route.Component{Name: "User"}},
//	})
//	r := router.New(table, driver.NewMemory("/"))
//
//	r.BeforeEach(func(to, from *route.Route, next *route.Next) {
//	    next.Proceed()
//	})
//	r.Push(route.PathLocation("/users/42"), func(rt *route.Route) {
//	    fmt.Println(rt.Params["id"]) // "42"
//	}, nil)
//
// # Transition Semantics
//
// Every navigation runs the full pipeline against a candidate route:
// leave guards of deactivated records (deepest first), global before
// hooks, update guards of kept records, per-record enter hooks, lazy
// component resolution, component enter guards and global resolve hooks.
// Any guard may abort, fail or redirect; a newer navigation started
// mid-pipeline cancels the older one at its next checkpoint. Exactly one
// of the completion callbacks fires per call.
//
// Silent outcomes (duplicated, aborted, cancelled, redirected) never
// reach error listeners; use errors.IsSilent to classify a failure.
package routewise
