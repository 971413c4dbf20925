// Package server exposes the planning pipeline over a small HTTP API
// for interactive clients.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"roomplanner/pkg/catalog"
	"roomplanner/pkg/layout"
	"roomplanner/pkg/recommend"
	"roomplanner/pkg/render"
	"roomplanner/pkg/scene2d"
	"roomplanner/pkg/spec"
	"roomplanner/pkg/validation"
)

// Server serves layout suggestions over HTTP.
type Server struct {
	catalog *catalog.Catalog
	logger  *log.Logger
	port    int
}

// New creates a server on the given port.
func New(port int, logger *log.Logger) *Server {
	return &Server{
		catalog: catalog.Default(),
		logger:  logger,
		port:    port,
	}
}

// Handler builds the HTTP routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/catalog", s.handleCatalog)
	r.Post("/api/suggest", s.handleSuggest)
	r.Post("/api/render", s.handleRender)

	return r
}

// Start launches the HTTP server. It blocks until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("roomplanner server starting", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// requestLogger tags each request with an ID and logs method, path and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, req)
		s.logger.Debug("request",
			"id", reqID,
			"method", req.Method,
			"path", req.URL.Path,
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCatalog returns the furniture requirements for one room type
// (?room_type=...) or for all supported room types.
func (s *Server) handleCatalog(w http.ResponseWriter, req *http.Request) {
	if rt := req.URL.Query().Get("room_type"); rt != "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"room_type":    rt,
			"requirements": s.catalog.RequirementsFor(spec.RoomType(rt)),
		})
		return
	}

	all := make(map[string][]catalog.Archetype, len(spec.RoomTypes()))
	for _, rt := range spec.RoomTypes() {
		all[string(rt)] = s.catalog.RequirementsFor(rt)
	}
	writeJSON(w, http.StatusOK, all)
}

// suggestResponse is the full pipeline output for one room spec.
type suggestResponse struct {
	Validation      *validation.Report `json:"validation"`
	Options         []layout.Option    `json:"options"`
	Recommendations *recommend.Report  `json:"recommendations"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, req *http.Request) {
	roomSpec, report, ok := s.decodeSpec(w, req)
	if !ok {
		return
	}

	archetypes := s.catalog.RequirementsFor(roomSpec.Room.Type)
	options := layout.Generate(s.catalog, roomSpec, archetypes)
	filtered := layout.FilterByBudget(options, roomSpec.Budget)

	writeJSON(w, http.StatusOK, suggestResponse{
		Validation:      report,
		Options:         filtered,
		Recommendations: recommend.Build(filtered, nil),
	})
}

type renderRequest struct {
	spec.RoomSpec
	OptionID int `json:"option_id"`
}

// handleRender runs the pipeline, places the requested option (the
// first filtered one when option_id is 0) and responds with the SVG
// floor plan.
func (s *Server) handleRender(w http.ResponseWriter, req *http.Request) {
	var rr renderRequest
	if err := json.NewDecoder(req.Body).Decode(&rr); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("decoding request: %v", err)})
		return
	}

	report := validation.ValidateRoomSpec(&rr.RoomSpec)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return
	}

	archetypes := s.catalog.RequirementsFor(rr.Room.Type)
	options := layout.Generate(s.catalog, &rr.RoomSpec, archetypes)
	filtered := layout.FilterByBudget(options, rr.Budget)
	if len(filtered) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no layout option fits the budget"})
		return
	}

	chosen := filtered[0]
	if rr.OptionID != 0 {
		found := false
		for _, opt := range filtered {
			if opt.ID == rr.OptionID {
				chosen = opt
				found = true
				break
			}
		}
		if !found {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("option %d is not within budget", rr.OptionID)})
			return
		}
	}

	placement := layout.Place(chosen.Furniture, rr.Room.LengthM, rr.Room.WidthM)
	scene := scene2d.Assemble(&rr.RoomSpec, chosen, placement, s.catalog)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(render.RenderSVG(scene))
}

// decodeSpec parses and validates a RoomSpec body. On hard validation
// errors it writes a 422 and returns ok=false.
func (s *Server) decodeSpec(w http.ResponseWriter, req *http.Request) (*spec.RoomSpec, *validation.Report, bool) {
	var roomSpec spec.RoomSpec
	if err := json.NewDecoder(req.Body).Decode(&roomSpec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("decoding request: %v", err)})
		return nil, nil, false
	}

	report := validation.ValidateRoomSpec(&roomSpec)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"validation": report})
		return nil, nil, false
	}
	return &roomSpec, report, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
