package models

import "time"

type Hall struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Location    string     `json:"location"`
	Facilities  []string   `json:"facilities"`
	IsAvailable bool       `json:"isAvailable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type HallUpdate struct {
	Name        *string   `json:"name"`
	Capacity    *int      `json:"capacity"`
	Location    *string   `json:"location"`
	Facilities  *[]string `json:"facilities"`
	IsAvailable *bool     `json:"isAvailable"`
}

func (h HallUpdate) HasFields() bool {
	return h.Name != nil || h.Capacity != nil || h.Location != nil || h.Facilities != nil || h.IsAvailable != nil
}
