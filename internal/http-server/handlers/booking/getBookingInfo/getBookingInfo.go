package getBookingInfo

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	Booking(id int) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookingInfo.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		booking, err := bookings.Booking(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Not Found"))
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking"))
			return
		}

		log.Info("booking retrieved successfully", slog.Int("id", id))

		render.JSON(w, r, booking)
	}
}
