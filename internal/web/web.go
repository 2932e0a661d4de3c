// Package web serves the HTTP API over the aggregation layer.
package web

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"datenight/internal/community"
	"datenight/internal/config"
	"datenight/internal/daterange"
	"datenight/internal/explore"
	"datenight/internal/icsexport"
	appLog "datenight/internal/log"
	"datenight/internal/metrics"
	"datenight/internal/model"
)

// Server exposes the explore view, search, community submission and the
// saved-events calendar feed.
type Server struct {
	cfg       *config.Config
	vm        *explore.ViewModel
	community *community.Service
	mux       *http.ServeMux
}

// NewServer constructs a Server around an already-loaded view-model.
func NewServer(cfg *config.Config, vm *explore.ViewModel, communitySvc *community.Service) *Server {
	s := &Server{
		cfg:       cfg,
		vm:        vm,
		community: communitySvc,
		mux:       http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler, wrapped in basic auth when
// configured.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	if s.basicAuthEnabled() {
		appLog.Info("HTTP basic auth enabled", "listen", "http://"+s.cfg.Listen)
		return s.basicAuthMiddleware(h)
	}
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/explore", s.handleExplore)
	s.mux.HandleFunc("/api/search", s.handleSearch)
	s.mux.HandleFunc("/api/community", s.handleCommunitySubmit)
	s.mux.HandleFunc("/api/saved/toggle", s.handleSavedToggle)
	s.mux.HandleFunc("/api/saved.ics", s.handleSavedICS)
	s.mux.Handle("/metrics", metrics.Handler())
}

func (s *Server) basicAuthEnabled() bool {
	if s.cfg == nil || s.cfg.BasicAuth == nil {
		return false
	}
	return s.cfg.BasicAuth.Username != "" && s.cfg.BasicAuth.Password != ""
}

// basicAuthMiddleware guards all handlers except /health.
func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	username := s.cfg.BasicAuth.Username
	password := s.cfg.BasicAuth.Password

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		u, p, ok := r.BasicAuth()
		if !ok || !secureCompare(u, username) || !secureCompare(p, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="datenight", charset="UTF-8"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// secureCompare compares two strings in constant time.
func secureCompare(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleExplore applies filters from query parameters and returns the
// aggregated snapshot.
//
//	GET /api/explore?category=Comedy&date=weekend
//	GET /api/explore?date=custom&start=2025-09-05&end=2025-09-07
func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, ok := model.ParseCategory(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
		s.vm.SelectCategory(cat)
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		filter := daterange.ParseFilter(raw)
		var custom *daterange.Range
		if filter == daterange.FilterCustom {
			start, err1 := time.ParseInLocation("2006-01-02", r.URL.Query().Get("start"), s.cfg.Location())
			end, err2 := time.ParseInLocation("2006-01-02", r.URL.Query().Get("end"), s.cfg.Location())
			if err1 != nil || err2 != nil {
				writeError(w, http.StatusBadRequest, "custom filter needs start and end as YYYY-MM-DD")
				return
			}
			cr := daterange.ResolveCustom(start, end)
			custom = &cr
		}
		if _, current := s.vm.Filters(); current != filter || filter == daterange.FilterCustom {
			s.vm.SelectDateFilter(r.Context(), filter, custom)
		}
	}

	writeJSON(w, http.StatusOK, s.vm.Snapshot())
}

// handleSearch is the uncached free-text passthrough.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}

	events, err := s.vm.Search(r.Context(), keyword)
	if err != nil {
		appLog.Error("search failed", err, "keyword", keyword)
		writeError(w, http.StatusBadGateway, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

// handleCommunitySubmit accepts a new community event submission.
func (s *Server) handleCommunitySubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	var doc community.EventDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.community.Submit(r.Context(), doc)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id, "status": community.StatusPending})
}

type toggleRequest struct {
	EventID string       `json:"event_id"`
	Source  model.Source `json:"source"`
}

// handleSavedToggle flips an event's saved state and reports how the
// optimistic write reconciled.
func (s *Server) handleSavedToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.EventID == "" {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	outcome := <-s.vm.ToggleSaved(r.Context(), req.EventID, req.Source)
	resp := map[string]any{
		"event_id": outcome.EventID,
		"saved":    outcome.Saved,
		"state":    outcome.State,
	}
	if outcome.Err != nil {
		resp["error"] = outcome.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSavedICS serves the couple's saved events as a calendar feed.
func (s *Server) handleSavedICS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}

	events := s.vm.SavedEvents()
	inputs := make([]icsexport.Input, 0, len(events))
	for _, ev := range events {
		inputs = append(inputs, icsexport.Input{
			ID:          ev.ID,
			Title:       ev.Title,
			Venue:       ev.Venue,
			Description: ev.Description,
			Dates:       ev.AllDates(),
		})
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="date-nights.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(icsexport.Calendar(inputs, time.Now())))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("write JSON response failed", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
