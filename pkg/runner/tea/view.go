package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/form"
)

var (
	tabActive   = lipgloss.NewStyle().Bold(true).Padding(0, 2).Reverse(true)
	tabInactive = lipgloss.NewStyle().Padding(0, 2).Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Faint(true)
	gap         = lipgloss.NewStyle().Padding(0, 1).Render
)

// View renders the tab bar, the active tab's body, and any overlay.
func (m Model) View() string {
	header := m.renderTabs()

	var body string
	switch m.tab {
	case tabCalendar:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderCalendar(), gap(" "), m.events.View())
	default:
		body = m.events.View()
	}

	out := header + "\n" + m.renderFilters() + "\n\n" + body

	switch m.mode {
	case modeForm:
		out += "\n\n" + m.renderForm()
	case modeHelp:
		help := "Keys: 1/2/3 or tab switch views, j/k move, h/l select day, t today, / search, f priority filter, o new event, i edit, x toggle done, dd delete, r refresh, q quit"
		out += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return out + "\n\n" + statusStyle.Render(m.status)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, 3)
	for _, t := range []tab{tabCalendar, tabUpcoming, tabCompleted} {
		if t == m.tab {
			rendered = append(rendered, tabActive.Render(t.title()))
		} else {
			rendered = append(rendered, tabInactive.Render(t.title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFilters() string {
	search := m.search.View()
	if m.mode != modeSearch && m.searchQuery == "" {
		search = labelStyle.Render("/ to search")
	}
	filter := labelStyle.Render("priority: " + m.priority.String())
	return search + "   " + filter
}

func (m Model) renderForm() string {
	title := "Create New Event"
	if m.ctrl.State() == form.StateEdit {
		title = "Edit Event"
	}

	cursor := func(field int) string {
		if m.formField == field {
			return "→ "
		}
		return "  "
	}

	lines := []string{lipgloss.NewStyle().Bold(true).Render(title), ""}
	rows := []struct {
		field int
		label string
		view  string
	}{
		{fieldTitle, "Title", m.formInputs[fieldTitle].View()},
		{fieldDate, "Date", m.formInputs[fieldDate].View()},
		{fieldTime, "Time", m.formInputs[fieldTime].View()},
		{fieldDescription, "Description", m.formInputs[fieldDescription].View()},
		{fieldPriority, "Priority", m.formPriority.String()},
	}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor(row.field), labelStyle.Render(row.label+":"), row.view))
	}
	if m.ctrl.State() == form.StateEdit {
		mark := "[ ]"
		if m.formCompleted {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cursor(fieldCompleted), labelStyle.Render("Completed:"), mark))
	}
	lines = append(lines, "", labelStyle.Render("enter save · esc cancel"))

	return panelStyle.Render(strings.Join(lines, "\n"))
}
