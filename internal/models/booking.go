package models

import "time"

type Booking struct {
	ID           int        `json:"id"`
	HallID       int        `json:"hallId"`
	UserID       int        `json:"userId"`
	Purpose      string     `json:"purpose"`
	Date         string     `json:"date"`
	StartTime    string     `json:"startTime"`
	Duration     string     `json:"duration"`
	Attendees    int        `json:"attendees"`
	Requirements string     `json:"requirements,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`

	// Populated by the list query only (joined columns).
	HallName string `json:"hallName,omitempty"`
	Username string `json:"username,omitempty"`
}

// BookingFilter narrows the booking listing. Search matches purpose,
// hall name and requester username.
type BookingFilter struct {
	Status string
	HallID int
	UserID int
	Search string
}

type BookingUpdate struct {
	HallID       *int    `json:"hallId"`
	UserID       *int    `json:"userId"`
	Purpose      *string `json:"purpose"`
	Date         *string `json:"date"`
	StartTime    *string `json:"startTime"`
	Duration     *string `json:"duration"`
	Attendees    *int    `json:"attendees"`
	Requirements *string `json:"requirements"`
	Status       *string `json:"status"`
}

func (b BookingUpdate) HasFields() bool {
	return b.HallID != nil || b.UserID != nil || b.Purpose != nil || b.Date != nil ||
		b.StartTime != nil || b.Duration != nil || b.Attendees != nil ||
		b.Requirements != nil || b.Status != nil
}
