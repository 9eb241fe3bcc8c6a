package deleteBooking

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	DeleteBooking(id int) error
}

// New deletes a booking by id. Deleting an id that does not exist still
// reports success, matching the rest of the delete endpoints.
func New(log *slog.Logger, bookings BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		if err = bookings.DeleteBooking(id); err != nil {
			log.Error("failed to delete booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete booking"))
			return
		}

		log.Info("booking deleted", slog.Int("id", id))

		render.JSON(w, r, response.Success())
	}
}
