// Package pipeline builds and runs the ordered guard queues of a navigation
// transition.
//
// RunQueue is the sequential asynchronous executor: it hands one guard at a
// time to the iterator and advances only when the iterator's continuation is
// called with true. ExtractGuards pulls component lifecycle guards off the
// matched records in the order the transition protocol requires, and
// ResolveComponents is the pipeline step that loads lazy component
// definitions before enter guards run.
package pipeline
