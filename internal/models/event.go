package models

import "time"

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	Organizer   string    `json:"organizer"`
	Status      string    `json:"status"`
	CreatedBy   int       `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EventFilter narrows the event listing. DateFrom/DateTo bound the date
// inclusively; Search matches title, description and organizer.
type EventFilter struct {
	Category string
	Status   string
	Search   string
	DateFrom string
	DateTo   string
}

type EventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Venue       *string `json:"venue"`
	Organizer   *string `json:"organizer"`
	Status      *string `json:"status"`
}

func (e EventUpdate) HasFields() bool {
	return e.Title != nil || e.Description != nil || e.Category != nil || e.Date != nil ||
		e.Time != nil || e.Venue != nil || e.Organizer != nil || e.Status != nil
}
