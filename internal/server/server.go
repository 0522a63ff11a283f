// Package server implements the mock manufacturing backend: the
// geometry-update and validation endpoints the edit pipeline calls, the
// static pricing endpoint, the ring part asset catalog, and a websocket
// stream broadcasting job status to connected clients.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/geometry"
)

// #region server
// Server is the mock backend. It satisfies http.Handler so tests can
// drive it through httptest without a listener.
type Server struct {
	mux    *http.ServeMux
	sim    *geometry.Simulator
	assets string
	hub    *Hub
}

// NewServer wires the routes. assetsDir is the directory listed and
// served by the 3dmodels-ring endpoints.
func NewServer(sim *geometry.Simulator, assetsDir string) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		sim:    sim,
		assets: assetsDir,
		hub:    NewHub(),
	}

	s.mux.HandleFunc("POST /api/geometry-update", s.handleGeometryUpdate)
	s.mux.HandleFunc("POST /api/validate-materials", s.handleValidateMaterials)
	s.mux.HandleFunc("GET /api/pricing", s.handlePricing)
	s.mux.HandleFunc("GET /api/3dmodels-ring/parts", s.handleListParts)
	s.mux.HandleFunc("GET /api/3dmodels-ring/{type}/{filename}", s.handleServePart)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	s.mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// #endregion server

// #region geometry-update
// handleGeometryUpdate simulates a mesh recomputation. The response
// echoes every submitted field with the result fields overlaid, so
// clients that round-trip extra keys keep them.
func (s *Server) handleGeometryUpdate(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to update geometry",
			"message": err.Error(),
		})
		return
	}

	cfg := configFromRaw(raw)
	s.hub.Broadcast(StatusMessage{Type: "status", Stage: "processing", Material: string(cfg.Material), Style: string(cfg.Style)})

	res, err := s.sim.UpdateGeometry(r.Context(), cfg)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to update geometry",
			"message": err.Error(),
		})
		return
	}

	s.hub.Broadcast(StatusMessage{Type: "status", Stage: "done", Material: string(cfg.Material), Style: string(cfg.Style), Price: res.Price})

	out := make(map[string]interface{}, len(raw)+6)
	for k, v := range raw {
		out[k] = v
	}
	out["success"] = true
	out["modelPath"] = res.ModelPath
	out["price"] = res.Price
	out["days"] = res.Days
	out["weight"] = res.Weight
	out["processingTime"] = res.ProcessingTime
	writeJSON(w, http.StatusOK, out)
}

func configFromRaw(raw map[string]interface{}) design.Config {
	var cfg design.Config
	data, err := json.Marshal(raw)
	if err != nil {
		return cfg
	}
	_ = json.Unmarshal(data, &cfg)
	return cfg
}

// #endregion geometry-update

// #region validate-materials
func (s *Server) handleValidateMaterials(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Material  string `json:"material"`
		Style     string `json:"style"`
		Engraving string `json:"engraving"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to validate materials",
			"message": err.Error(),
		})
		return
	}

	v := geometry.ValidateMaterials(design.Material(req.Material), design.Style(req.Style), design.Engraving(req.Engraving))
	writeJSON(w, http.StatusOK, v)
}

// #endregion validate-materials

// #region pricing
// handlePricing returns the static pricing breakdown. Input is ignored.
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"basePrice":          1000,
		"materialMultiplier": 1.2,
		"styleMultiplier":    1.3,
		"engravingCost":      50,
		"estimatedTotal":     1500,
		"estimatedDays":      "30-35",
	})
}

// #endregion pricing

// #region assets
var allowedPartTypes = map[string]bool{"BAND": true, "HEAD": true, "STONE": true}

// handleListParts lists the available asset filenames grouped by part
// prefix.
func (s *Server) handleListParts(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.assets)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Cannot read models directory",
		})
		return
	}

	band := []string{}
	head := []string{}
	stone := []string{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasPrefix(name, "BAND_"):
			band = append(band, name)
		case strings.HasPrefix(name, "HEAD_"):
			head = append(head, name)
		case strings.HasPrefix(name, "STONE_"):
			stone = append(stone, name)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"band":    band,
		"head":    head,
		"stone":   stone,
	})
}

// handleServePart serves one asset file after validating that the type
// is known and the filename carries the matching prefix.
func (s *Server) handleServePart(w http.ResponseWriter, r *http.Request) {
	partType := r.PathValue("type")
	filename := r.PathValue("filename")

	if !allowedPartTypes[partType] {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid type",
		})
		return
	}
	if !strings.HasPrefix(filename, partType+"_") {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Filename/type mismatch",
		})
		return
	}

	path := filepath.Join(s.assets, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "File not found",
		})
		return
	}
	http.ServeFile(w, r, path)
}

// #endregion assets

// #region helpers
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[SERVER] failed to encode response: %v", err)
	}
}

// #endregion helpers
