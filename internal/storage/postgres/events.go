package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusBooker/internal/models"
	"campusBooker/internal/storage"
)

const eventColumns = `id, title, description, category, date::text, time::text, venue, organizer, status, created_by, created_at`

func (s *Storage) CreateEvent(event models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (title, description, category, date, time, venue, organizer, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		event.Title,
		event.Description,
		event.Category,
		event.Date,
		event.Time,
		event.Venue,
		event.Organizer,
		event.Status,
		event.CreatedBy,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return s.Event(id)
}

func (s *Storage) Event(id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Date,
		&event.Time,
		&event.Venue,
		&event.Organizer,
		&event.Status,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) AllEvents(filter models.EventFilter) ([]models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d OR organizer ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY date DESC, time DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Category,
			&event.Date,
			&event.Time,
			&event.Venue,
			&event.Organizer,
			&event.Status,
			&event.CreatedBy,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(id int, upd models.EventUpdate) (*models.Event, error) {
	var set []string
	var args []interface{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addField("title", *upd.Title)
	}
	if upd.Description != nil {
		addField("description", *upd.Description)
	}
	if upd.Category != nil {
		addField("category", *upd.Category)
	}
	if upd.Date != nil {
		addField("date", *upd.Date)
	}
	if upd.Time != nil {
		addField("time", *upd.Time)
	}
	if upd.Venue != nil {
		addField("venue", *upd.Venue)
	}
	if upd.Organizer != nil {
		addField("organizer", *upd.Organizer)
	}
	if upd.Status != nil {
		addField("status", *upd.Status)
	}

	if len(set) == 0 {
		return nil, storage.ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	if _, err := s.DB.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return s.Event(id)
}

func (s *Storage) DeleteEvent(id int) error {
	if _, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
