package postgres

import (
	"regexp"
	"testing"
	"time"

	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The conflict scan must carry the approved-only predicate; a query
// without it does not match this pattern and fails the expectations.
const approvedOnly = `AND status = 'approved'`

func TestCreateBookingConsultsOnlyApprovedRows(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	booking := models.Booking{
		HallID:    2,
		UserID:    3,
		Purpose:   "Guest lecture",
		Date:      "2026-09-10",
		StartTime: "10:30",
		Duration:  "1",
		Attendees: 40,
		Status:    "pending",
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(approvedOnly)).
		WithArgs(booking.HallID, booking.Date).
		WillReturnRows(sqlmock.NewRows([]string{"start_time", "duration"}).
			AddRow("07:00:00", "2"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(2, 3, "Guest lecture", "2026-09-10", "10:30", "1", 40, nil, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "hall_id", "user_id", "purpose", "date", "start_time", "duration",
			"attendees", "requirements", "status", "created_at", "updated_at",
		}).AddRow(7, 2, 3, "Guest lecture", "2026-09-10", "10:30:00", "1", 40, nil, "pending", time.Now(), nil))

	created, err := s.CreateBooking(booking)

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingApprovedOverlapConflicts(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := &Storage{DB: db}

	booking := models.Booking{
		HallID:    2,
		UserID:    3,
		Purpose:   "Guest lecture",
		Date:      "2026-09-10",
		StartTime: "10:30",
		Duration:  "1",
		Attendees: 40,
		Status:    "pending",
	}

	mock.ExpectBegin()
	// An approved 09:00 two-hour booking runs until 11:00 and overlaps
	// the candidate 10:30 slot.
	mock.ExpectQuery(regexp.QuoteMeta(approvedOnly)).
		WithArgs(booking.HallID, booking.Date).
		WillReturnRows(sqlmock.NewRows([]string{"start_time", "duration"}).
			AddRow("09:00:00", "2"))
	mock.ExpectRollback()

	_, err = s.CreateBooking(booking)

	assert.ErrorIs(t, err, storage.ErrTimeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
