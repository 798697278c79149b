package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/bryan-buckman/foodmood/internal/database"
	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/opml"
)

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.GetSources()
	if err != nil {
		http.Error(w, "Failed to get sources", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sources)
}

func (s *Server) handleImportOPML(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("opml")
	if err != nil {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	entries, err := opml.Parse(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse OPML: %v", err), http.StatusBadRequest)
		return
	}

	imported := ImportEntries(s.store, entries)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"imported": imported,
		"total":    len(entries),
	})
}

// ImportEntries subscribes to every OPML entry and returns how many were new.
// Individual failures are logged and skipped.
func ImportEntries(store database.Store, entries []opml.Entry) int {
	imported := 0
	for _, e := range entries {
		_, isNew, err := store.GetOrCreateSource(e.Title, e.URL)
		if err != nil {
			log.Printf("Error creating source %s: %v", e.URL, err)
			continue
		}
		if isNew {
			imported++
		}
	}
	return imported
}

func (s *Server) handleExportOPML(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.GetSources()
	if err != nil {
		http.Error(w, "Failed to get sources", http.StatusInternalServerError)
		return
	}
	data, err := opml.Export("FoodMood sources", sources)
	if err != nil {
		http.Error(w, "Failed to export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", "attachment; filename=foodmood-sources.opml")
	w.Write(data)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	results, err := s.importer.ImportAll(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Import error: %v", err), http.StatusInternalServerError)
		return
	}
	total := 0
	for _, n := range results {
		total += n
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"new_posts": total,
		"sources":   len(results),
	})
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	interval, _ := s.store.GetPollingInterval()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"polling_interval": interval,
	})
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PollingInterval int `json:"polling_interval"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.PollingInterval < database.MinPollingIntervalMinutes {
		req.PollingInterval = database.MinPollingIntervalMinutes
	}
	if err := s.store.SetSetting(model.SettingPollingInterval, strconv.Itoa(req.PollingInterval)); err != nil {
		http.Error(w, "Failed to save", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "polling_interval": req.PollingInterval})
}
