// Package server provides the posts service: the HTTP API the client
// talks to, plus search, planning, ratings and feed-source management.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/bryan-buckman/foodmood/internal/config"
	"github.com/bryan-buckman/foodmood/internal/database"
	"github.com/bryan-buckman/foodmood/internal/feed"
	"github.com/bryan-buckman/foodmood/internal/saved"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the main HTTP server.
type Server struct {
	store    database.Store
	importer *feed.Importer
	poller   *feed.Poller
	saved    *saved.Set
	router   chi.Router
}

// New creates a server on store. The background poller is only created
// when cfg allows it.
func New(store database.Store, cfg *config.Config) *Server {
	s := &Server{
		store:    store,
		importer: feed.NewImporter(store, nil),
		saved:    saved.New(),
	}
	if !cfg.DisablePoller {
		s.poller = feed.NewPoller(store, nil)
	}
	s.setupRoutes(cfg.AllowedOrigins)
	return s
}

func (s *Server) setupRoutes(origins []string) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID", "X-User-Name"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.handleListPosts)
		r.Post("/", s.handleCreatePost)
		r.Get("/{postID}", s.handleGetPost)
		r.Get("/{postID}/ratings", s.handleListRatings)
		r.Post("/{postID}/ratings", s.handleAddRating)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Post("/plan", s.handlePlan)
		r.Get("/suggestions", s.handleSuggestions)
		r.Get("/saved", s.handleListSaved)
		r.Post("/saved", s.handleToggleSaved)
		r.Get("/sources", s.handleListSources)
		r.Post("/sources/import-opml", s.handleImportOPML)
		r.Get("/sources/export-opml", s.handleExportOPML)
		r.Post("/refresh", s.handleRefresh)
		r.Get("/settings", s.handleGetSettings)
		r.Post("/settings", s.handleSaveSettings)
	})

	s.router = r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the poller and serves on addr.
func (s *Server) Start(addr string) error {
	if s.poller != nil {
		s.poller.Start()
	}
	log.Printf("Server starting on %s (%s)", addr, s.store.DatabaseType())
	return http.ListenAndServe(addr, s.router)
}

// Stop stops the poller.
func (s *Server) Stop() {
	if s.poller != nil {
		s.poller.Stop()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"database": s.store.DatabaseType(),
	})
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encode response: %v", err)
	}
}
