package me

import (
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

// New reports the current user. Token-based sessions are not wired up
// yet, so the endpoint answers 501 until they are.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log.Info("current-user lookup requested", slog.String("op", op))

		render.Status(r, http.StatusNotImplemented)
		render.JSON(w, r, response.Error("Not implemented"))
	}
}
