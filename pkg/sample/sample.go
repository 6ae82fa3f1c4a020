// Package sample provides the seed events a fresh session starts with, so
// one-shot commands and demos have something to show.
package sample

import "tableflip.dev/agenda/pkg/event"

// Seed pairs a creatable draft with the completion state it should end up
// in. Creation always starts uncompleted, so seeding toggles afterwards.
type Seed struct {
	Draft     event.Draft
	Completed bool
}

// Events returns the default seed set.
func Events() []Seed {
	return []Seed{
		{
			Draft: event.Draft{
				Title:       "Team Meeting",
				Date:        "2024-03-26",
				Time:        "14:00",
				Description: "Weekly team sync-up",
				Priority:    "medium",
			},
		},
		{
			Draft: event.Draft{
				Title:       "Client Presentation",
				Date:        "2024-03-28",
				Time:        "10:30",
				Description: "Q1 project review",
				Priority:    "high",
			},
		},
		{
			Draft: event.Draft{
				Title:       "Project Deadline",
				Date:        "2024-04-05",
				Time:        "18:00",
				Description: "Final submission for Q1 project",
				Priority:    "high",
			},
		},
		{
			Draft: event.Draft{
				Title:       "Training Session",
				Date:        "2024-03-24",
				Time:        "09:00",
				Description: "New tools onboarding",
				Priority:    "low",
			},
			Completed: true,
		},
	}
}
