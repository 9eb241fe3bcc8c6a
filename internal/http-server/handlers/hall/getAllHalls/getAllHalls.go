package getAllHalls

import (
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HallsProvider
type HallsProvider interface {
	AllHalls() ([]models.Hall, error)
}

func New(log *slog.Logger, halls HallsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hall.getAllHalls.New"

		log = log.With(slog.String("op", op))

		list, err := halls.AllHalls()
		if err != nil {
			log.Error("failed to get halls", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get halls"))
			return
		}

		log.Info("halls retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
