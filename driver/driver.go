package driver

// Driver owns the visible navigation address. FullPath values are the
// complete address strings a confirmed route renders to (path, query,
// hash).
type Driver interface {
	// Push appends fullPath as a new history entry.
	Push(fullPath string)
	// Replace swaps the current history entry for fullPath.
	Replace(fullPath string)
	// Go moves delta entries through the history and reports the address
	// landed on through the change callback.
	Go(delta int)
	// EnsureURL reconciles the visible address with fullPath, pushing a
	// new entry when push is set and replacing otherwise. It fires no
	// change callback; the controller calls it, the controller already knows.
	EnsureURL(fullPath string, push bool)
	// CurrentLocation returns the address currently visible.
	CurrentLocation() string
	// OnChange registers the callback fired when the address changes
	// underneath the controller. Last writer wins.
	OnChange(fn func(fullPath string))
}
