// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/sportscal/cliparse"
	"github.com/danielhkuo/sportscal/handlers"
	"github.com/danielhkuo/sportscal/middleware"
	"github.com/danielhkuo/sportscal/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(st)
	eventHandler := handlers.NewEventHandler(st)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Reference data
	mux.HandleFunc("GET /api/sports", middleware.WithLogging(catalogHandler.ListSports))
	mux.HandleFunc("GET /api/venues", middleware.WithLogging(catalogHandler.ListVenues))
	mux.HandleFunc("GET /api/teams", middleware.WithLogging(catalogHandler.ListTeams))

	// Events
	mux.HandleFunc("GET /api/events", middleware.WithLogging(eventHandler.ListEvents))
	mux.HandleFunc("GET /api/events/search", middleware.WithLogging(eventHandler.SearchEvents))
	mux.HandleFunc("GET /api/events/{id}", middleware.WithLogging(eventHandler.GetEvent))
	mux.HandleFunc("POST /api/events", middleware.WithLogging(eventHandler.CreateEvent))

	// Front end
	mux.HandleFunc("GET /", middleware.WithLogging(staticHandler.ServeFile))

	return mux
}
