package event

// Draft is the transient, unvalidated event data a form holds before it is
// committed. Every field is the raw boundary string; validation happens in
// one place, at commit time.
type Draft struct {
	Title       string
	Date        string
	Time        string
	Description string
	Priority    string
	Completed   bool
}

// DraftOf captures an event's current fields for editing.
func DraftOf(e *Event) Draft {
	p := e.Priority
	if !p.IsValid() {
		p = Medium
	}
	return Draft{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Priority:    p.String(),
		Completed:   e.Completed,
	}
}
