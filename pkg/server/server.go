// Package server exposes the catalog over HTTP for local tooling and
// web frontends.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"fitcatalog/pkg/browser"
	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/catalog"
	apperrors "fitcatalog/pkg/errors"
	"fitcatalog/pkg/source"
)

// pageMemoTTL bounds how long a filtered page is served from memory.
// Keys embed the sync timestamp, so a refresh naturally misses.
const pageMemoTTL = 30 * time.Second

// Server serves the merged catalog. All reads go through the browser
// snapshot, so HTTP consumers see exactly what the TUI sees.
type Server struct {
	browser *browser.Browser
	pages   *cache.TTLMap[string, catalog.Page]
}

func New(b *browser.Browser) *Server {
	return &Server{
		browser: b,
		pages:   cache.NewTTLMap[string, catalog.Page](pageMemoTTL),
	}
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/exercises", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/exercises/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/refresh", s.handleRefresh).Methods(http.MethodPost)
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	api.HandleFunc("/sources", s.handleSources).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)
}

// ListenAndServe runs the server with sane timeouts.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	slog.Info("HTTP server listening", "addr", addr)
	return srv.ListenAndServe()
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("Request handled",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	snap := s.browser.Snapshot()

	q := catalog.Query{
		Text:      r.URL.Query().Get("q"),
		Muscle:    r.URL.Query().Get("muscle"),
		Equipment: r.URL.Query().Get("equipment"),
	}
	if d := r.URL.Query().Get("difficulty"); d != "" {
		q.Difficulty = catalog.ParseDifficulty(d)
	}
	if v := r.URL.Query().Get("page"); v != "" {
		q.Page, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("perPage"); v != "" {
		q.PerPage, _ = strconv.Atoi(v)
	}

	key := fmt.Sprintf("%d|%s", snap.LastSync.UnixNano(), r.URL.RawQuery)
	page, ok := s.pages.Get(key)
	if !ok {
		page = catalog.Apply(snap.Exercises, q)
		s.pages.Set(key, page)
	}

	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	snap := s.browser.Snapshot()

	ex, ok := catalog.FindByID(snap.Exercises, id)
	if !ok {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))

	if err := s.browser.Refresh(r.Context(), force); err != nil {
		writeError(w, http.StatusBadGateway, string(apperrors.GetCode(err)), err.Error())
		return
	}
	s.writeStatus(w)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeStatus(w)
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sources": source.Manifests()})
}

type statusResponse struct {
	State    string     `json:"state"`
	Loading  bool       `json:"loading"`
	Count    int        `json:"count"`
	LastSync *time.Time `json:"lastSync,omitempty"`
	Error    string     `json:"error,omitempty"`
}

func (s *Server) writeStatus(w http.ResponseWriter) {
	snap := s.browser.Snapshot()

	resp := statusResponse{
		State:   snap.State.String(),
		Loading: snap.Loading,
		Count:   len(snap.Exercises),
	}
	if !snap.LastSync.IsZero() {
		resp.LastSync = &snap.LastSync
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}
