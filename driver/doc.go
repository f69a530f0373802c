// Package driver abstracts where navigation addresses live.
//
// The transition controller never touches a URL bar directly: it tells a
// Driver to push, replace or reconcile the visible address, and the driver
// reports externally triggered address changes (back/forward, manual edits)
// through its change callback. The Memory driver keeps the address list
// in-process for headless and terminal hosts; browser-style drivers would
// implement the same interface over their host's history API.
package driver
