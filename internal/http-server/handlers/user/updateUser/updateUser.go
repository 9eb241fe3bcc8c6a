package updateUser

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
	"golang.org/x/crypto/bcrypt"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserUpdater
type UserUpdater interface {
	UpdateUser(id int, upd models.UserUpdate) (*models.User, error)
}

func New(log *slog.Logger, users UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateUser.New"

		log = log.With(slog.String("op", op))

		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid user id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

		var upd models.UserUpdate

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

		// Storage only ever sees a hash, never the plaintext.
		if upd.Password != nil {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				log.Error("failed to hash password", sl.Err(hashErr))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update user"))
				return
			}
			hashed := string(hash)
			upd.Password = &hashed
		}

		user, err := users.UpdateUser(id, upd)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Not Found"))
				return
			}

			log.Error("failed to update user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update user"))
			return
		}

		log.Info("user updated", slog.Int("id", id))

		render.JSON(w, r, user)
	}
}
