package getAllBookings

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	AllBookings(filter models.BookingFilter) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log = log.With(slog.String("op", op))

		hallID, _ := strconv.Atoi(r.URL.Query().Get("hallId"))
		userID, _ := strconv.Atoi(r.URL.Query().Get("userId"))

		filter := models.BookingFilter{
			Status: r.URL.Query().Get("status"),
			HallID: hallID,
			UserID: userID,
			Search: r.URL.Query().Get("search"),
		}

		list, err := bookings.AllBookings(filter)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
