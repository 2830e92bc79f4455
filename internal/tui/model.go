// Package tui is the terminal presentation layer. It maps key events to
// navigation commands, resolves view data in background commands keyed by
// view, and renders whatever state the navigation core exposes. All
// navigation decisions live in the core; the model here is deliberately
// dumb.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

// viewResolvedMsg delivers the result of a background resolve. Key is the
// view key the resolve was started for; results for views that are no
// longer current are discarded on receipt.
type viewResolvedMsg struct {
	key   string
	state nav.ViewState
}

// Model is the bubbletea model wrapping the navigation core.
type Model struct {
	core *nav.Core

	state  nav.ViewState
	cursor int

	commandMode  bool
	commandInput string

	width  int
	height int
}

// New creates a model over the core.
func New(core *nav.Core) Model {
	return Model{
		core:  core,
		state: core.Snapshot(),
	}
}

// Init starts resolving the root view.
func (m Model) Init() tea.Cmd {
	return m.resolveCmd()
}

// resolveCmd resolves the current top view off the event loop, so GoBack
// and preference toggles stay responsive while a fetch is in flight.
func (m Model) resolveCmd() tea.Cmd {
	view := m.core.Top()
	core := m.core
	return func() tea.Msg {
		return viewResolvedMsg{
			key:   view.Key(),
			state: core.Resolve(context.Background(), view),
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case viewResolvedMsg:
		// Stale results (user navigated away mid-fetch) are dropped; the
		// data still landed in the cache for re-entry.
		if msg.key != m.core.Top().Key() {
			return m, nil
		}
		m.state = msg.state
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.commandMode {
			return m.updateCommandMode(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

// updateCommandMode handles keys while the ":" command bar is open.
func (m Model) updateCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.commandMode = false
		m.commandInput = ""
		return m, nil

	case "enter":
		input := strings.TrimSpace(m.commandInput)
		m.commandMode = false
		m.commandInput = ""
		if input == "q" || input == "quit" {
			return m, tea.Quit
		}
		if kind, ok := resource.ParseKind(input); ok {
			m.core.Dispatch(nav.SelectKind{Kind: kind})
			return m.afterNavigation()
		}
		// Unknown command: silent no-op
		return m, nil

	case "backspace":
		if len(m.commandInput) > 0 {
			m.commandInput = m.commandInput[:len(m.commandInput)-1]
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput += string(msg.Runes)
		}
		return m, nil
	}
}

// updateBrowse handles keys in normal browse mode.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case ":":
		m.commandMode = true
		m.commandInput = ""
		return m, nil

	case "esc":
		if quit := m.core.Dispatch(nav.GoBack{}); quit {
			return m, tea.Quit
		}
		return m.afterNavigation()

	case "enter":
		ref, ok := m.highlightedRef()
		if !ok {
			return m, nil
		}
		m.core.Dispatch(nav.DrillInto{Ref: ref})
		return m.afterNavigation()

	case "t":
		if dv, ok := m.core.Top().(nav.DetailView); ok {
			m.core.Dispatch(nav.SwitchTransformations{Ref: dv.Ref})
			return m.afterNavigation()
		}
		return m, nil

	case "h":
		m.core.Dispatch(nav.ToggleHoverPanel{})
		return m, nil

	case "a":
		m.core.Dispatch(nav.ToggleWideLayout{})
		return m, nil

	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "n", "right":
		m.core.Dispatch(nav.NextPage{})
		return m.afterNavigation()

	case "p", "left":
		m.core.Dispatch(nav.PrevPage{})
		return m.afterNavigation()

	case "r":
		// Retry an errored view by re-resolving it
		if m.state.State == nav.StateError {
			return m, m.resolveCmd()
		}
		return m, nil
	}

	return m, nil
}

// afterNavigation refreshes local state after any command that may have
// changed the top view, kicking off a resolve when the new view has no
// ready data yet.
func (m Model) afterNavigation() (tea.Model, tea.Cmd) {
	prevKey := ""
	if m.state.View != nil {
		prevKey = m.state.View.Key()
	}
	m.state = m.core.Snapshot()
	if m.state.View.Key() != prevKey {
		m.cursor = 0
	}
	if m.state.State == nav.StateReady {
		return m, nil
	}
	return m, m.resolveCmd()
}

// highlightedRef returns the ref under the cursor: a list item in a list
// view, or a relation in a detail view.
func (m Model) highlightedRef() (resource.Ref, bool) {
	if m.state.State != nav.StateReady {
		return resource.Ref{}, false
	}
	switch m.state.View.(type) {
	case nav.ListView:
		items := m.state.Page.Items
		if m.cursor < 0 || m.cursor >= len(items) {
			return resource.Ref{}, false
		}
		return items[m.cursor].Ref, true
	case nav.DetailView:
		rels := m.state.Record.Relations
		if m.cursor < 0 || m.cursor >= len(rels) {
			return resource.Ref{}, false
		}
		return rels[m.cursor], true
	}
	return resource.Ref{}, false
}

// clampCursor keeps the cursor inside the current view's selectable range.
func (m *Model) clampCursor() {
	max := 0
	if m.state.State == nav.StateReady {
		switch m.state.View.(type) {
		case nav.ListView:
			max = len(m.state.Page.Items) - 1
		case nav.DetailView:
			max = len(m.state.Record.Relations) - 1
		}
	}
	if max < 0 {
		max = 0
	}
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
