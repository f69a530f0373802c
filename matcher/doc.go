// Package matcher resolves raw locations into route snapshots.
//
// The transition controller only depends on the Matcher interface. Table is
// the built-in implementation: a route-config tree compiled once into
// route.Record values. Compiling once is what gives the engine its diffing
// contract: every Match returns the same *Record pointers for the same
// table entries, so unchanged ancestors compare identical across
// transitions.
//
// Patterns are static segments plus ":param" captures and a "*" catch-all.
// Anything fancier (regex patterns, encoding rules) belongs to a different
// matcher implementation.
package matcher
