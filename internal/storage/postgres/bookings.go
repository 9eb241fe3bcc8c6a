package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campusBooker/internal/lib/timeslot"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"
)

const bookingColumns = `id, hall_id, user_id, purpose, date::text, start_time::text, duration, attendees, requirements, status, created_at, updated_at`

// CreateBooking checks the candidate slot against approved bookings for
// the same hall and date and inserts the row in a single transaction.
// An overlap returns storage.ErrTimeConflict. Only approved bookings
// block a slot; approval is the serialization point, not creation.
func (s *Storage) CreateBooking(booking models.Booking) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	conflictQuery := `
		SELECT start_time::text, duration
		FROM bookings
		WHERE hall_id = $1 AND date = $2 AND status = 'approved'`

	rows, err := tx.Query(conflictQuery, booking.HallID, booking.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings: %w", err)
	}

	for rows.Next() {
		var startTime, duration string
		if err = rows.Scan(&startTime, &duration); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		if timeslot.Conflicts(booking.StartTime, booking.Duration, startTime, duration) {
			rows.Close()
			return nil, storage.ErrTimeConflict
		}
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}
	rows.Close()

	insertQuery := `
		INSERT INTO bookings (hall_id, user_id, purpose, date, start_time, duration, attendees, requirements, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int
	err = tx.QueryRow(insertQuery,
		booking.HallID,
		booking.UserID,
		booking.Purpose,
		booking.Date,
		booking.StartTime,
		booking.Duration,
		booking.Attendees,
		nullIfEmpty(booking.Requirements),
		booking.Status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Booking(id)
}

func (s *Storage) Booking(id int) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	var requirements sql.NullString
	var updatedAt sql.NullTime

	err := s.DB.QueryRow(query, id).Scan(
		&booking.ID,
		&booking.HallID,
		&booking.UserID,
		&booking.Purpose,
		&booking.Date,
		&booking.StartTime,
		&booking.Duration,
		&booking.Attendees,
		&requirements,
		&booking.Status,
		&booking.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	booking.Requirements = requirements.String
	if updatedAt.Valid {
		booking.UpdatedAt = &updatedAt.Time
	}

	return &booking, nil
}

func (s *Storage) AllBookings(filter models.BookingFilter) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.hall_id, b.user_id, b.purpose, b.date::text, b.start_time::text, b.duration,
		       b.attendees, b.requirements, b.status, b.created_at, b.updated_at,
		       h.name, u.username
		FROM bookings b
		JOIN halls h ON b.hall_id = h.id
		JOIN users u ON b.user_id = u.id
		WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if filter.HallID != 0 {
		args = append(args, filter.HallID)
		query += fmt.Sprintf(" AND b.hall_id = $%d", len(args))
	}
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND b.user_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (b.purpose ILIKE $%d OR h.name ILIKE $%d OR u.username ILIKE $%d)", n, n, n)
	}

	query += " ORDER BY b.created_at DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var booking models.Booking
		var requirements sql.NullString
		var updatedAt sql.NullTime

		err = rows.Scan(
			&booking.ID,
			&booking.HallID,
			&booking.UserID,
			&booking.Purpose,
			&booking.Date,
			&booking.StartTime,
			&booking.Duration,
			&booking.Attendees,
			&requirements,
			&booking.Status,
			&booking.CreatedAt,
			&updatedAt,
			&booking.HallName,
			&booking.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		booking.Requirements = requirements.String
		if updatedAt.Valid {
			booking.UpdatedAt = &updatedAt.Time
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) UpdateBooking(id int, upd models.BookingUpdate) (*models.Booking, error) {
	var set []string
	var args []interface{}

	addField := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.HallID != nil {
		addField("hall_id", *upd.HallID)
	}
	if upd.UserID != nil {
		addField("user_id", *upd.UserID)
	}
	if upd.Purpose != nil {
		addField("purpose", *upd.Purpose)
	}
	if upd.Date != nil {
		addField("date", *upd.Date)
	}
	if upd.StartTime != nil {
		addField("start_time", *upd.StartTime)
	}
	if upd.Duration != nil {
		addField("duration", *upd.Duration)
	}
	if upd.Attendees != nil {
		addField("attendees", *upd.Attendees)
	}
	if upd.Requirements != nil {
		addField("requirements", nullIfEmpty(*upd.Requirements))
	}
	if upd.Status != nil {
		addField("status", *upd.Status)
	}

	if len(set) == 0 {
		return nil, storage.ErrNoFields
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE bookings SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	if _, err := s.DB.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return s.Booking(id)
}

func (s *Storage) DeleteBooking(id int) error {
	if _, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
