package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/event"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events prints a chronological list as a table: when, priority, title,
// description. Completed events render struck through.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, e := range events {
		when, priority, title, desc := e.Row()
		if e.Completed {
			title = strike(title)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), when, priorityColor(e.Priority).Sprint(priority), title, desc)
			continue
		}
		tbl.AddRow(when, priorityColor(e.Priority).Sprint(priority), title, desc)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// priorityColor maps priorities onto the dashboard's badge colors:
// low blue, medium yellow, high red.
func priorityColor(p event.Priority) *color.Color {
	switch p {
	case event.High:
		return color.New(color.FgRed)
	case event.Low:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgYellow)
	}
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9
)

func strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}
