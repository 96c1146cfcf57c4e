package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/api"
	"github.com/vasiliy-maslov/restaurant-ordering-client/internal/stub"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Starting stub-server...")

	port := os.Getenv("STUB_PORT")
	if port == "" {
		port = "8080"
	}

	server := stub.NewServer()
	server.SeedStaff("staff@example.com", "staff-password")
	server.SeedMenu(defaultMenu())

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Msg("Stub API listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("port", port).Msg("Could not listen")
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Info().Msg("Shutting down stub-server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Stub-server stopped gracefully.")
}

func defaultMenu() []api.MenuItem {
	return []api.MenuItem{
		{ID: "m-1", Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 9.5, Category: "pizza"},
		{ID: "m-2", Name: "Paneer Tikka", Description: "Grilled paneer with spices", Price: 7.0, Category: "starters"},
		{ID: "m-3", Name: "Butter Chicken", Description: "Creamy tomato gravy, naan on the side", Price: 11.0, Category: "mains"},
		{ID: "m-4", Name: "Masala Chai", Description: "Spiced milk tea", Price: 2.0, Category: "drinks"},
	}
}
