package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusBooker/internal/config"
	"campusBooker/internal/http-server/handlers/auth/login"
	"campusBooker/internal/http-server/handlers/auth/logout"
	"campusBooker/internal/http-server/handlers/auth/me"
	"campusBooker/internal/http-server/handlers/booking/createBooking"
	"campusBooker/internal/http-server/handlers/booking/deleteBooking"
	"campusBooker/internal/http-server/handlers/booking/getAllBookings"
	"campusBooker/internal/http-server/handlers/booking/getBookingInfo"
	"campusBooker/internal/http-server/handlers/booking/updateBooking"
	"campusBooker/internal/http-server/handlers/event/createEvent"
	"campusBooker/internal/http-server/handlers/event/deleteEvent"
	"campusBooker/internal/http-server/handlers/event/getAllEvents"
	"campusBooker/internal/http-server/handlers/event/getEventInfo"
	"campusBooker/internal/http-server/handlers/event/updateEvent"
	"campusBooker/internal/http-server/handlers/hall/createHall"
	"campusBooker/internal/http-server/handlers/hall/deleteHall"
	"campusBooker/internal/http-server/handlers/hall/getAllHalls"
	"campusBooker/internal/http-server/handlers/hall/getHallInfo"
	"campusBooker/internal/http-server/handlers/hall/updateHall"
	"campusBooker/internal/http-server/handlers/user/createUser"
	"campusBooker/internal/http-server/handlers/user/deleteUser"
	"campusBooker/internal/http-server/handlers/user/getAllUsers"
	"campusBooker/internal/http-server/handlers/user/getUserInfo"
	"campusBooker/internal/http-server/handlers/user/updateUser"
	"campusBooker/internal/http-server/middleware/mwlogger"
	"campusBooker/internal/lib/logger/handlers/slogpretty"
	"campusBooker/internal/lib/logger/sl"
	"campusBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting campus booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"status": "ok"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", login.New(log, storage))
			r.Post("/logout", logout.New(log))
			r.Get("/me", me.New(log))
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", getAllEvents.New(log, storage))
			r.Post("/", createEvent.New(log, storage))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getEventInfo.New(log, storage))
				r.Put("/", updateEvent.New(log, storage))
				r.Delete("/", deleteEvent.New(log, storage))
			})
		})

		r.Route("/halls", func(r chi.Router) {
			r.Get("/", getAllHalls.New(log, storage))
			r.Post("/", createHall.New(log, storage))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getHallInfo.New(log, storage))
				r.Put("/", updateHall.New(log, storage))
				r.Delete("/", deleteHall.New(log, storage))
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Get("/", getAllBookings.New(log, storage))
			r.Post("/", createBooking.New(log, storage))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getBookingInfo.New(log, storage))
				r.Put("/", updateBooking.New(log, storage))
				r.Delete("/", deleteBooking.New(log, storage))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", getAllUsers.New(log, storage))
			r.Post("/", createUser.New(log, storage))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getUserInfo.New(log, storage))
				r.Put("/", updateUser.New(log, storage))
				r.Delete("/", deleteUser.New(log, storage))
			})
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
