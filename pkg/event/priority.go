package event

import (
	"fmt"
	"strings"
)

// Priority classifies how important an event is.
type Priority string

const (
	Low    Priority = "low"
	Medium Priority = "medium" // default
	High   Priority = "high"

	// All is the sentinel a filter uses to accept every priority. It is
	// never valid on an event itself.
	All Priority = "all"
)

// Priorities returns the valid event priorities, lowest first.
func Priorities() []Priority {
	return []Priority{Low, Medium, High}
}

// IsValid returns true if p is a priority an event may carry.
func (p Priority) IsValid() bool {
	switch p {
	case Low, Medium, High:
		return true
	}
	return false
}

// Rank orders priorities for display, most important first.
func (p Priority) Rank() int {
	switch p {
	case High:
		return 0
	case Medium:
		return 1
	case Low:
		return 2
	default:
		return 3
	}
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps user input onto a Priority. The empty string parses to
// Medium so a blank form field never rejects a draft.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Medium, nil
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h":
		return High, nil
	}
	return "", fmt.Errorf("event: unknown priority %q", s)
}

// ParseFilter is ParsePriority extended with the "all" sentinel; the empty
// string means no filtering.
func ParseFilter(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "any":
		return All, nil
	}
	return ParsePriority(s)
}
