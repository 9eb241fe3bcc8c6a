package updateHall

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HallUpdater
type HallUpdater interface {
	UpdateHall(id int, upd models.HallUpdate) (*models.Hall, error)
}

func New(log *slog.Logger, halls HallUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hall.updateHall.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid hall id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hall id format"))
			return
		}

		var upd models.HallUpdate

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

		hall, err := halls.UpdateHall(id, upd)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Not Found"))
				return
			}

			log.Error("failed to update hall", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update hall"))
			return
		}

		log.Info("hall updated", slog.Int("id", id))

		render.JSON(w, r, hall)
	}
}
