package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/routewise/routewise/driver"
	"github.com/routewise/routewise/matcher"
	"github.com/routewise/routewise/route"
	"github.com/routewise/routewise/router"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	recordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	authStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const maxEvents = 8

// demoInstance stands in for a mounted component so enter-guard callbacks
// have something to receive.
type demoInstance struct {
	name string
}

func (d *demoInstance) Destroyed() bool { return false }

type navigatorModel struct {
	r       *router.Router
	d       *driver.Memory
	session *session

	input  textinput.Model
	typing bool

	// Form screen state. The guards touching it run synchronously inside
	// Push calls made from Update, so only the event loop mutates it.
	formDirty    bool
	confirming   bool
	pendingLeave *route.Next

	// Lazy component loads commit off the event loop, so everything the
	// router callbacks touch is guarded.
	mu     sync.Mutex
	events []string
	errMsg string
}

func newNavigatorModel(cfgs []matcher.Config, authed bool) *navigatorModel {
	m := &navigatorModel{
		session: &session{loggedIn: authed},
	}

	// The profile screen demonstrates component guards: leaving with
	// unsaved edits asks for confirmation, and entering queues a focus
	// callback that waits for the mounted instance.
	if form := findComponent(cfgs, "settings-profile"); form != nil {
		form.Guard(route.KindLeave, func(inst route.Instance, to, from *route.Route, next *route.Next) {
			if !m.formDirty {
				next.Proceed()
				return
			}
			m.pendingLeave = next
			m.confirming = true
		})
		form.Guard(route.KindEnter, func(inst route.Instance, to, from *route.Route, next *route.Next) {
			next.Defer(func(route.Instance) {
				m.pushEvent("focused profile form")
			})
		})
	}

	m.r, m.d = newDemoRouter(cfgs, m.session)

	m.r.AfterEach(func(to, from *route.Route) {
		for _, rec := range from.Matched {
			for slot := range rec.Components {
				m.r.UnregisterInstance(rec, slot)
			}
		}
		for _, rec := range to.Matched {
			for slot, c := range rec.Components {
				m.r.RegisterInstance(rec, slot, &demoInstance{name: c.Name})
			}
		}
		m.pushEvent("-> " + to.FullPath)
	})
	m.r.OnError(func(err error) {
		m.mu.Lock()
		m.errMsg = err.Error()
		m.mu.Unlock()
	})
	m.r.OnReady(func(rt *route.Route) {
		m.pushEvent("ready at " + rt.FullPath)
	}, nil)

	ti := textinput.New()
	ti.Placeholder = "/users/42?tab=posts"
	ti.Prompt = "go to: "
	ti.Width = 48
	m.input = ti

	return m
}

func (m *navigatorModel) pushEvent(ev string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *navigatorModel) Init() tea.Cmd {
	return nil
}

func (m *navigatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirming {
		switch key.String() {
		case "y":
			m.confirming = false
			m.formDirty = false
			m.pendingLeave.Proceed()
			m.pendingLeave = nil
		case "n", "esc":
			m.confirming = false
			m.pendingLeave.Abort()
			m.pendingLeave = nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.typing {
		switch key.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			m.typing = false
			m.input.Blur()
			m.input.SetValue("")
			if raw != "" {
				m.navigate(raw)
			}
			return m, nil
		case "esc":
			m.typing = false
			m.input.Blur()
			m.input.SetValue("")
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "g", "/":
		m.typing = true
		m.clearError()
		m.input.Focus()

	case "b", "left":
		m.r.Back()

	case "f", "right":
		m.r.Forward()

	case "l":
		m.session.loggedIn = !m.session.loggedIn
		if m.session.loggedIn {
			m.pushEvent("logged in")
		} else {
			m.pushEvent("logged out")
		}

	case "e":
		if m.r.CurrentRoute().Name == "settings-profile" && !m.formDirty {
			m.formDirty = true
			m.pushEvent("edited profile form")
		}
	}

	return m, nil
}

func (m *navigatorModel) clearError() {
	m.mu.Lock()
	m.errMsg = ""
	m.mu.Unlock()
}

func (m *navigatorModel) navigate(raw string) {
	m.clearError()
	m.r.Push(route.ParseLocation(raw), nil, func(err error) {
		if err != nil {
			m.pushEvent("blocked: " + err.Error())
		}
	})
}

func (m *navigatorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Route Explorer"))
	b.WriteString("\n\n")

	rt := m.r.CurrentRoute()
	b.WriteString("Current: ")
	b.WriteString(pathStyle.Render(rt.FullPath))
	if rt.Name != "" {
		b.WriteString("  (" + rt.Name + ")")
	}
	b.WriteString("\n")

	if len(rt.Params) > 0 {
		b.WriteString("Params:  " + formatMap(rt.Params) + "\n")
	}
	if len(rt.Query) > 0 {
		b.WriteString("Query:   " + formatMap(rt.Query) + "\n")
	}

	b.WriteString("Matched:")
	if len(rt.Matched) == 0 {
		b.WriteString(" (none)")
	}
	b.WriteString("\n")
	for _, rec := range rt.Matched {
		b.WriteString("  " + recordStyle.Render(rec.Path) + "\n")
	}

	b.WriteString("\nSession: ")
	if m.session.loggedIn {
		b.WriteString(authStyle.Render("logged in"))
	} else {
		b.WriteString("logged out")
	}
	b.WriteString(fmt.Sprintf("   History: %d entries\n", m.d.Len()))

	if m.formDirty {
		b.WriteString(authStyle.Render("Unsaved form edits") + "\n")
	}

	if m.confirming {
		b.WriteString("\n" + errorStyle.Render("Discard unsaved edits and leave? (y/n)") + "\n")
	}

	if m.typing {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	m.mu.Lock()
	errMsg := m.errMsg
	events := make([]string, len(m.events))
	copy(events, m.events)
	m.mu.Unlock()

	if errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+errMsg) + "\n")
	}

	if len(events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, ev := range events {
			b.WriteString("  " + eventStyle.Render(ev) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("g go to • b/f back/forward • l toggle login • e edit form • q quit"))
	return b.String()
}

// findComponent locates a table entry's component by route name.
func findComponent(cfgs []matcher.Config, name string) *route.Component {
	for i := range cfgs {
		if cfgs[i].Name == name && cfgs[i].Component != nil {
			return cfgs[i].Component
		}
		if c := findComponent(cfgs[i].Children, name); c != nil {
			return c
		}
	}
	return nil
}

func runInteractive(cfgs []matcher.Config, authed bool) error {
	p := tea.NewProgram(newNavigatorModel(cfgs, authed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
