package createEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/api/validate"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Venue       string `json:"venue" validate:"required"`
	Organizer   string `json:"organizer" validate:"required"`
	Status      string `json:"status"`
	CreatedBy   int    `json:"createdBy"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (*models.Event, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

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
			status = "upcoming"
		}

		createdBy := req.CreatedBy
		if createdBy == 0 {
			createdBy = 1
		}

		event, err := events.CreateEvent(models.Event{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Date:        req.Date,
			Time:        req.Time,
			Venue:       req.Venue,
			Organizer:   req.Organizer,
			Status:      status,
			CreatedBy:   createdBy,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))
			return
		}

		log.Info("event created", slog.Int("id", event.ID))

		render.JSON(w, r, event)
	}
}
