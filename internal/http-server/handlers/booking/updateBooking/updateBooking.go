package updateBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(id int, upd models.BookingUpdate) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		var upd models.BookingUpdate

		err = render.DecodeJSON(r.Body, &upd)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if !upd.HasFields() {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("No fields to update"))
			return
		}

		booking, err := bookings.UpdateBooking(id, upd)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Not Found"))
				return
			}

			log.Error("failed to update booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking"))
			return
		}

		log.Info("booking updated", slog.Int("id", id))

		render.JSON(w, r, booking)
	}
}
