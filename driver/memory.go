package driver

import "sync"

// Memory is the in-process driver for hosts without a native address bar.
// It keeps an ordered address list and an index into it, like a browser
// history without the browser.
type Memory struct {
	mu       sync.Mutex
	stack    []string
	index    int
	onChange func(string)
}

// NewMemory creates a memory driver positioned at initial.
func NewMemory(initial string) *Memory {
	if initial == "" {
		initial = "/"
	}
	return &Memory{stack: []string{initial}}
}

// Push appends fullPath, discarding any forward entries.
func (m *Memory) Push(fullPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stack = append(m.stack[:m.index+1], fullPath)
	m.index++
}

// Replace swaps the current entry for fullPath.
func (m *Memory) Replace(fullPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stack[m.index] = fullPath
}

// Go moves delta entries and fires the change callback with the address
// landed on. Out-of-range deltas are ignored.
func (m *Memory) Go(delta int) {
	m.mu.Lock()
	target := m.index + delta
	if target < 0 || target >= len(m.stack) {
		m.mu.Unlock()
		return
	}
	m.index = target
	fullPath := m.stack[target]
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(fullPath)
	}
}

// EnsureURL reconciles the current entry with fullPath without firing the
// change callback.
func (m *Memory) EnsureURL(fullPath string, push bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stack[m.index] == fullPath {
		return
	}
	if push {
		m.stack = append(m.stack[:m.index+1], fullPath)
		m.index++
		return
	}
	m.stack[m.index] = fullPath
}

// CurrentLocation returns the address at the current index.
func (m *Memory) CurrentLocation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stack[m.index]
}

// OnChange registers the external-change callback. Last writer wins.
func (m *Memory) OnChange(fn func(string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Len reports how many entries the history holds.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stack)
}
