// Package teaui is the full-screen dashboard: a calendar pane, upcoming and
// completed tabs, search and priority filtering, and a modal form for
// creating and editing events.
package teaui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/form"
	"tableflip.dev/agenda/pkg/query"
	"tableflip.dev/agenda/pkg/store"
)

type tab int

const (
	tabCalendar tab = iota
	tabUpcoming
	tabCompleted
)

func (t tab) title() string {
	switch t {
	case tabCalendar:
		return "Calendar"
	case tabUpcoming:
		return "Upcoming"
	default:
		return "Completed"
	}
}

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeForm
	modeHelp
)

// eventItem adapts an Event for the bubbles list.
type eventItem struct {
	e   *event.Event
	now time.Time
}

func (it eventItem) Title() string {
	mark := "○"
	if it.e.Completed {
		mark = "✘"
	}
	badge := ""
	switch {
	case it.e.Completed:
		badge = " [done]"
	case it.e.Upcoming(it.now):
		badge = " [upcoming]"
	}
	return fmt.Sprintf("%s %s  %s (%s)%s", mark, it.e.When(), it.e.Title, it.e.Priority, badge)
}
func (it eventItem) Description() string { return it.e.Description }
func (it eventItem) FilterValue() string { return it.e.Title }

// Model contains UI state for one dashboard session.
type Model struct {
	store *store.Store
	ctrl  *form.Controller
	ctx   context.Context

	mode mode
	tab  tab

	search      textinput.Model
	searchQuery string
	priority    event.Priority

	selectedDate time.Time

	events list.Model

	formInputs    []textinput.Model
	formField     int
	formPriority  event.Priority
	formCompleted bool

	status string

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int

	changes <-chan store.Change
}

const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldDescription
	fieldPriority
	fieldCompleted
	fieldCount
)

// New creates a dashboard model over the session store.
func New(s *store.Store) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Events"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	search := textinput.New()
	search.Placeholder = "Search events..."
	search.CharLimit = 128
	search.Prompt = "/"

	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Enter event title"
	inputs[fieldDate].Placeholder = event.LayoutDate
	inputs[fieldTime].Placeholder = event.LayoutClock
	inputs[fieldDescription].Placeholder = "Add event details"

	ctx := context.Background()
	m := Model{
		store:        s,
		ctrl:         form.NewController(s),
		ctx:          ctx,
		mode:         modeNormal,
		tab:          tabCalendar,
		search:       search,
		priority:     event.All,
		selectedDate: event.Today(),
		events:       l,
		formInputs:   inputs,
		formPriority: event.Medium,
		status:       "h/l day, j/k move, tab views, / search, f filter, o new, i edit, x done, dd delete, ? help",
	}
	if s != nil {
		m.changes = s.Watch(ctx)
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange turns store notifications into messages so any mutation,
// from whichever surface, redraws the derived views.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{change: c}
	}
}

type changeMsg struct{ change store.Change }
type errMsg struct{ err error }

// visible computes the current tab's view from a fresh store snapshot.
// The calendar tab lists everything on the selected day; search and
// priority filters narrow only the upcoming and completed tabs.
func (m *Model) visible() []*event.Event {
	if m.store == nil {
		return nil
	}
	sorted := query.SortChronological(m.store.List())

	switch m.tab {
	case tabCalendar:
		return query.EventsOn(sorted, m.selectedDate)
	case tabUpcoming:
		upcoming, _ := query.Partition(m.filter(sorted))
		return upcoming
	default:
		_, completed := query.Partition(m.filter(sorted))
		return completed
	}
}

func (m *Model) filter(events []*event.Event) []*event.Event {
	return query.Filter{Search: m.searchQuery, Priority: m.priority}.Apply(events)
}

// reload recomputes the visible list in place. Every view is a full
// recomputation from the store snapshot; nothing is cached across commits.
func (m *Model) reload() {
	now := time.Now()
	visible := m.visible()
	items := make([]list.Item, 0, len(visible))
	for _, e := range visible {
		items = append(items, eventItem{e: e, now: now})
	}
	prev := m.events.Index()
	m.events.SetItems(items)
	if prev >= len(items) {
		prev = len(items) - 1
	}
	if prev >= 0 {
		m.events.Select(prev)
	}
	m.events.Title = m.listTitle(len(items))
}

func (m *Model) listTitle(count int) string {
	switch m.tab {
	case tabCalendar:
		return fmt.Sprintf("Events on %s - %d", event.FormatDate(m.selectedDate), count)
	default:
		return fmt.Sprintf("%s Events - %d", m.tab.title(), count)
	}
}

func (m *Model) currentEvent() *event.Event {
	if len(m.events.Items()) == 0 {
		return nil
	}
	sel := m.events.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(eventItem)
	return it.e
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case changeMsg:
		m.reload()
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
				skipListRouting = true
			}
		case modeSearch:
			switch msg.String() {
			case "enter", "esc":
				m.mode = modeNormal
				m.search.Blur()
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				cmds = append(cmds, cmd)
			}
			m.searchQuery = m.search.Value()
			m.reload()
		case modeForm:
			m.updateForm(msg, &cmds)
			skipListRouting = true
		case modeNormal:
			// Every key handled here is swallowed so the list's own
			// bindings for j/k/g/G/q do not fire a second time.
			skipListRouting = true
			switch msg.String() {
			case "tab":
				m.tab = (m.tab + 1) % 3
				m.reload()
			case "1":
				m.tab = tabCalendar
				m.reload()
			case "2":
				m.tab = tabUpcoming
				m.reload()
			case "3":
				m.tab = tabCompleted
				m.reload()

			case "/":
				m.mode = modeSearch
				if cmd := m.search.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)

			case "f":
				m.priority = nextFilter(m.priority)
				m.status = "Priority filter: " + m.priority.String()
				m.reload()

			// day selection, calendar tab only
			case "h", "left":
				if m.tab == tabCalendar {
					m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
					m.reload()
				}
			case "l", "right":
				if m.tab == tabCalendar {
					m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
					m.reload()
				}
			case "t":
				if m.tab == tabCalendar {
					m.selectedDate = event.Today()
					m.reload()
				}

			case "j", "down":
				m.events.CursorDown()
			case "k", "up":
				m.events.CursorUp()
			case "g":
				m.events.Select(0)
			case "G":
				m.events.Select(len(m.events.Items()) - 1)

			case "o", "O":
				m.openCreate(&cmds)
			case "i":
				if e := m.currentEvent(); e != nil {
					m.openEdit(e, &cmds)
				}

			case "x":
				if e := m.currentEvent(); e != nil {
					if _, err := m.store.ToggleCompletion(e.ID); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "Toggled"
						m.reload()
					}
				}

			case "d":
				if e := m.currentEvent(); e != nil {
					if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
						m.store.Delete(e.ID)
						m.status = "Deleted"
						m.reload()
						m.awaitingDD = false
					} else {
						m.awaitingDD = true
						m.lastDTime = time.Now()
					}
				}

			case "r":
				m.reload()
			case "?":
				m.mode = modeHelp
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			default:
				skipListRouting = false
			}
			if msg.String() != "d" {
				m.awaitingDD = false
			}
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func nextFilter(p event.Priority) event.Priority {
	switch p {
	case event.All:
		return event.High
	case event.High:
		return event.Medium
	case event.Medium:
		return event.Low
	default:
		return event.All
	}
}

// applySizes recalculates pane sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 4
	if m.tab == tabCalendar {
		// Leave room for the month pane.
		width = m.termWidth - calendarPaneWidth - 6
	}
	if width < 20 {
		width = 20
	}
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.events.SetSize(width, height)
}

// Run starts the dashboard over the provided session store.
func Run(s *store.Store) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
