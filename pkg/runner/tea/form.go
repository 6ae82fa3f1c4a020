package teaui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/form"
)

// openCreate opens the modal with a blank draft. On the calendar tab the
// draft starts on the selected day instead of today.
func (m *Model) openCreate(cmds *[]tea.Cmd) {
	m.ctrl.OpenCreate()
	if m.tab == tabCalendar {
		m.ctrl.SetDay(m.selectedDate)
	}
	m.enterForm(cmds)
}

func (m *Model) openEdit(e *event.Event, cmds *[]tea.Cmd) {
	m.ctrl.OpenEdit(e)
	m.enterForm(cmds)
}

func (m *Model) enterForm(cmds *[]tea.Cmd) {
	d := m.ctrl.Draft()
	m.formInputs[fieldTitle].SetValue(d.Title)
	m.formInputs[fieldDate].SetValue(d.Date)
	m.formInputs[fieldTime].SetValue(d.Time)
	m.formInputs[fieldDescription].SetValue(d.Description)
	p, err := event.ParsePriority(d.Priority)
	if err != nil {
		p = event.Medium
	}
	m.formPriority = p
	m.formCompleted = d.Completed

	m.mode = modeForm
	m.formField = fieldTitle
	m.focusField(cmds)
	if m.ctrl.State() == form.StateEdit {
		m.status = "Edit Event: enter save, esc cancel, tab next field"
	} else {
		m.status = "Create New Event: enter save, esc cancel, tab next field"
	}
}

// lastField is the deepest reachable form field; the completed checkbox
// only exists while editing, matching the dashboard's modal.
func (m *Model) lastField() int {
	if m.ctrl.State() == form.StateEdit {
		return fieldCompleted
	}
	return fieldPriority
}

func (m *Model) focusField(cmds *[]tea.Cmd) {
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
	if m.formField < len(m.formInputs) {
		if cmd := m.formInputs[m.formField].Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	}
}

func (m *Model) updateForm(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.Cancel()
		m.mode = modeNormal
		m.status = "Cancelled"
		return

	case "enter":
		m.syncDraft(cmds)
		if _, err := m.ctrl.Submit(); err != nil {
			// Validation keeps the form open with the draft intact.
			m.status = "ERR: " + err.Error()
			return
		}
		m.mode = modeNormal
		m.status = "Saved"
		m.reload()
		return

	case "tab", "down":
		m.formField++
		if m.formField > m.lastField() {
			m.formField = fieldTitle
		}
		m.focusField(cmds)
		return
	case "shift+tab", "up":
		m.formField--
		if m.formField < fieldTitle {
			m.formField = m.lastField()
		}
		m.focusField(cmds)
		return
	}

	switch m.formField {
	case fieldPriority:
		switch msg.String() {
		case "left", "h":
			m.formPriority = prevPriority(m.formPriority)
		case "right", "l", " ":
			m.formPriority = nextPriority(m.formPriority)
		}
	case fieldCompleted:
		if msg.String() == " " || msg.String() == "space" {
			m.formCompleted = !m.formCompleted
		}
	default:
		var cmd tea.Cmd
		m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

// syncDraft pushes the widget values into the controller's draft through
// the same field commands every other surface uses.
func (m *Model) syncDraft(cmds *[]tea.Cmd) {
	set := func(name, value string) {
		if err := m.ctrl.Set(name, value); err != nil {
			*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
		}
	}
	set("title", m.formInputs[fieldTitle].Value())
	set("date", m.formInputs[fieldDate].Value())
	set("time", m.formInputs[fieldTime].Value())
	set("description", m.formInputs[fieldDescription].Value())
	set("priority", m.formPriority.String())
	if m.ctrl.State() == form.StateEdit {
		set("completed", strconv.FormatBool(m.formCompleted))
	}
}

func nextPriority(p event.Priority) event.Priority {
	switch p {
	case event.Low:
		return event.Medium
	case event.Medium:
		return event.High
	default:
		return event.Low
	}
}

func prevPriority(p event.Priority) event.Priority {
	switch p {
	case event.High:
		return event.Medium
	case event.Medium:
		return event.Low
	default:
		return event.High
	}
}
