package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/event"
	"tableflip.dev/agenda/pkg/query"
)

// Calendar prints the month containing `on`, bolding days that have events,
// then lists the events on `on` itself.
func (pp *PrettyPrint) Calendar(on time.Time, events ...*event.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	pp.PrintMonth(then, events...)

	pp.Title("Events on " + on.Format(event.LayoutDate))
	pp.Events(query.EventsOn(events, on)...)
}

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth renders one month, marking every day that has at least one
// event scheduled.
func (pp *PrettyPrint) PrintMonth(then time.Time, events ...*event.Event) {
	days := DaysIn(then)

	count := make([]int, days)
	for _, day := range query.DatesWithEvents(events) {
		if day.Month() == then.Month() && day.Year() == then.Year() {
			count[day.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		if i < d {
			fmt.Print("   ")
		}
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
