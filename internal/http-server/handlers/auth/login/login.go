package login

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"
	"campusBooker/internal/storage"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByUsername(username string) (*models.User, error)
}

func New(log *slog.Logger, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		req.Username = strings.TrimSpace(req.Username)

		if req.Username == "" || req.Password == "" {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("Username and password are required"))
			return
		}

		user, err := users.UserByUsername(req.Username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				log.Info("login rejected", slog.String("username", req.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid credentials"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			log.Info("login rejected", slog.String("username", req.Username))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid credentials"))
			return
		}

		log.Info("user logged in", slog.Int("id", user.ID))

		render.JSON(w, r, map[string]*models.User{"user": user})
	}
}
