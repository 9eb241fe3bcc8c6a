package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/api/validate"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	HallID       *int   `json:"hallId" validate:"required"`
	UserID       *int   `json:"userId" validate:"required"`
	Purpose      string `json:"purpose" validate:"required"`
	Date         string `json:"date" validate:"required"`
	StartTime    string `json:"startTime" validate:"required"`
	Duration     string `json:"duration" validate:"required,oneof=1 2 3 4 full-day"`
	Attendees    *int   `json:"attendees" validate:"required"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(booking models.Booking) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validate.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		status := req.Status
		if status == "" {
			status = "pending"
		}

		booking, err := bookings.CreateBooking(models.Booking{
			HallID:       *req.HallID,
			UserID:       *req.UserID,
			Purpose:      req.Purpose,
			Date:         req.Date,
			StartTime:    req.StartTime,
			Duration:     req.Duration,
			Attendees:    *req.Attendees,
			Requirements: req.Requirements,
			Status:       status,
		})
		if err != nil {
			if errors.Is(err, storage.ErrTimeConflict) {
				log.Info("booking conflicts with an approved booking",
					slog.Int("hall_id", *req.HallID),
					slog.String("date", req.Date),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("Time slot not available"))
				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.Int("id", booking.ID))

		render.JSON(w, r, booking)
	}
}
