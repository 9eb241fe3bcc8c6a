package getAllUsers

import (
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersProvider
type UsersProvider interface {
	AllUsers(filter models.UserFilter) ([]models.User, error)
}

func New(log *slog.Logger, users UsersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getAllUsers.New"

		log = log.With(slog.String("op", op))

		filter := models.UserFilter{
			Role:   r.URL.Query().Get("role"),
			Search: r.URL.Query().Get("search"),
		}

		list, err := users.AllUsers(filter)
		if err != nil {
			log.Error("failed to get users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get users"))
			return
		}

		log.Info("users listed", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
