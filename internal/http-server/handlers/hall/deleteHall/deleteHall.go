package deleteHall

import (
	"log/slog"
	"net/http"
	"strconv"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HallDeleter
type HallDeleter interface {
	DeleteHall(id int) error
}

func New(log *slog.Logger, halls HallDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hall.deleteHall.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid hall id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hall id format"))
			return
		}

		if err = halls.DeleteHall(id); err != nil {
			log.Error("failed to delete hall", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete hall"))
			return
		}

		log.Info("hall deleted", slog.Int("id", id))

		render.JSON(w, r, response.Success())
	}
}
