package createHall

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

type HallRequest struct {
	Name        string   `json:"name" validate:"required"`
	Capacity    int      `json:"capacity" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Facilities  []string `json:"facilities"`
	IsAvailable *bool    `json:"isAvailable"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HallCreator
type HallCreator interface {
	CreateHall(hall models.Hall) (*models.Hall, error)
}

func New(log *slog.Logger, halls HallCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hall.createHall.New"

		log = log.With(slog.String("op", op))

		var req HallRequest

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

		facilities := req.Facilities
		if facilities == nil {
			facilities = []string{}
		}

		isAvailable := true
		if req.IsAvailable != nil {
			isAvailable = *req.IsAvailable
		}

		hall, err := halls.CreateHall(models.Hall{
			Name:        req.Name,
			Capacity:    req.Capacity,
			Location:    req.Location,
			Facilities:  facilities,
			IsAvailable: isAvailable,
		})
		if err != nil {
			log.Error("failed to create hall", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create hall"))
			return
		}

		log.Info("hall created", slog.Int("id", hall.ID))

		render.JSON(w, r, hall)
	}
}
