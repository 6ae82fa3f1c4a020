package teaui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/query"
)

const calendarPaneWidth = len("Su Mo Tu We Th Fr Sa")

var (
	monthStyle   = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Width(calendarPaneWidth)
	weekdayStyle = lipgloss.NewStyle().Faint(true)
	dayStyle     = lipgloss.NewStyle()
	markedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// renderCalendar draws the month containing the selected day, marking days
// that have events and highlighting the selection.
func (m *Model) renderCalendar() string {
	marked := make(map[time.Time]bool)
	if m.store != nil {
		for _, day := range query.DatesWithEvents(m.store.List()) {
			marked[day] = true
		}
	}
	return renderMonth(m.selectedDate, marked, time.Now())
}

func renderMonth(selected time.Time, marked map[time.Time]bool, now time.Time) string {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	daysIn := first.AddDate(0, 1, -1).Day()

	var b strings.Builder
	b.WriteString(monthStyle.Render(fmt.Sprintf("%s %d", first.Month(), first.Year())))
	b.WriteString("\n")
	b.WriteString(weekdayStyle.Render("Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	// Pad out the start of the month.
	col := int(first.Weekday())
	b.WriteString(strings.Repeat("   ", col))

	for d := 1; d <= daysIn; d++ {
		day := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, first.Location())
		cell := fmt.Sprintf("%2d", d)

		style := dayStyle
		if marked[day] {
			style = markedStyle
		}
		if event.Day(now).Equal(day) {
			style = style.Underline(true)
		}
		if event.Day(selected).Equal(day) {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(cell))

		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}
