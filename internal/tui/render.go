package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	crumbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// narrowWidth caps body text unless the wide layout is toggled on.
const narrowWidth = 72

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dragon Ball Z Explorer"))
	b.WriteString("\n")
	b.WriteString(crumbStyle.Render(m.breadcrumb()))
	b.WriteString("\n\n")

	switch m.state.State {
	case nav.StateIdle, nav.StateFetching:
		b.WriteString(detailStyle.Render("fetching..."))
	case nav.StateError:
		b.WriteString(errorStyle.Render("fetch failed"))
		b.WriteString("\n")
		if m.state.Err != nil {
			b.WriteString(detailStyle.Render(m.state.Err.Error()))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r retry · esc back"))
	case nav.StateReady:
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n\n")
	if m.commandMode {
		b.WriteString(":" + m.commandInput + "█")
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(kindHint() + " :q"))
	} else {
		b.WriteString(helpStyle.Render(": command · enter open · esc back · t transformations · h hover · a wide"))
	}
	b.WriteString("\n")

	return b.String()
}

// breadcrumb names the current view and its pagination position.
func (m Model) breadcrumb() string {
	switch v := m.state.View.(type) {
	case nav.ListView:
		if v.Owner != nil {
			return fmt.Sprintf("%ss of %s", v.Kind, v.Owner)
		}
		if m.state.State == nav.StateReady {
			return fmt.Sprintf("%ss · page %d/%d · %d total", v.Kind, v.Page+1, m.state.Page.TotalPages, m.state.Page.TotalItems)
		}
		return fmt.Sprintf("%ss · page %d", v.Kind, v.Page+1)
	case nav.DetailView:
		return v.Ref.String()
	}
	return ""
}

// renderBody renders a ready view, optionally splitting in a hover panel.
func (m Model) renderBody() string {
	var body string
	switch m.state.View.(type) {
	case nav.ListView:
		body = m.renderList()
	case nav.DetailView:
		body = m.renderDetail()
	}

	if m.core.Prefs().HoverPanel {
		if panel := m.renderHoverPanel(); panel != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panelStyle.Render(panel))
		}
	}
	return body
}

func (m Model) renderList() string {
	var b strings.Builder
	for i, item := range m.state.Page.Items {
		line := fmt.Sprintf("%-28s %s", item.Name, item.Detail)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(detailStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if m.state.Page.HasNext() {
		b.WriteString(helpStyle.Render("\n  n next page"))
	}
	return b.String()
}

func (m Model) renderDetail() string {
	rec := m.state.Record
	width := narrowWidth
	if m.core.Prefs().WideLayout && m.width > narrowWidth {
		width = m.width - 4
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(rec.Name))
	b.WriteString("\n\n")
	for _, f := range rec.Fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(labelStyle.Render(f.Label + ": "))
		b.WriteString(detailStyle.Width(width).Render(f.Value))
		b.WriteString("\n")
	}

	if len(rec.Relations) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Related"))
		b.WriteString("\n")
		for i, rel := range rec.Relations {
			line := rel.String()
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(detailStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderHoverPanel summarizes the highlighted item without drilling in.
func (m Model) renderHoverPanel() string {
	if lv, ok := m.state.View.(nav.ListView); ok {
		items := m.state.Page.Items
		if m.cursor < 0 || m.cursor >= len(items) {
			return ""
		}
		item := items[m.cursor]
		return fmt.Sprintf("%s\n%s\n%s", labelStyle.Render(item.Name), item.Detail, crumbStyle.Render(lv.Kind.String()+" "+item.Ref.String()))
	}
	return ""
}

// kindHint is shown when an unknown command is entered; lists the aliases.
func kindHint() string {
	var parts []string
	for _, k := range resource.Kinds() {
		parts = append(parts, fmt.Sprintf(":%s", k))
	}
	return strings.Join(parts, " ")
}
