package logout

import (
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"

	"github.com/go-chi/render"
)

// New acknowledges the logout. Sessions are held client-side, so there
// is nothing to invalidate on the server.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log.Info("user logged out", slog.String("op", op))

		render.JSON(w, r, response.Success())
	}
}
