package getAllEvents

import (
	"log/slog"
	"net/http"

	"campusBooker/internal/lib/api/response"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsProvider
type EventsProvider interface {
	AllEvents(filter models.EventFilter) ([]models.Event, error)
}

func New(log *slog.Logger, events EventsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		filter := models.EventFilter{
			Category: r.URL.Query().Get("category"),
			Status:   r.URL.Query().Get("status"),
			Search:   r.URL.Query().Get("search"),
			DateFrom: r.URL.Query().Get("dateFrom"),
			DateTo:   r.URL.Query().Get("dateTo"),
		}

		list, err := events.AllEvents(filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		render.JSON(w, r, list)
	}
}
