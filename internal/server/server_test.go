package server

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jewelify/design-engine/internal/geometry"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	assets := t.TempDir()
	for _, name := range []string{"BAND_CLASSIC.glb", "BAND_KNIFE.glb", "HEAD_SOLITAIRE.glb", "STONE_BRILLIANT.glb", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(assets, name), []byte("glTF"), 0o644); err != nil {
			t.Fatalf("write asset %s: %v", name, err)
		}
	}
	sim := geometry.NewSimulator(geometry.SimConfig{}, rand.New(rand.NewSource(5)))
	return NewServer(sim, assets), assets
}

func postJSON(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func getJSON(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func TestGeometryUpdateEchoesSubmittedFields(t *testing.T) {
	s, _ := testServer(t)

	rr := postJSON(t, s, "/api/geometry-update", map[string]interface{}{
		"material":  "platinum",
		"style":     "halo",
		"engraving": "none",
		"clientTag": "keep-me",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["success"] != true {
		t.Fatalf("success = %v", resp["success"])
	}
	// Submitted keys come back, even ones the backend does not understand.
	if resp["material"] != "platinum" || resp["clientTag"] != "keep-me" {
		t.Fatalf("echo lost fields: %v", resp)
	}
	for _, key := range []string{"modelPath", "price", "days", "weight", "processingTime"} {
		if _, ok := resp[key]; !ok {
			t.Fatalf("response missing %q: %v", key, resp)
		}
	}
	if resp["modelPath"] == "" {
		t.Fatal("empty model path")
	}
}

func TestGeometryUpdateBadBody(t *testing.T) {
	s, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/geometry-update", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["success"] != false || resp["error"] != "Failed to update geometry" {
		t.Fatalf("unexpected error payload: %v", resp)
	}
}

func TestValidateMaterialsEndpoint(t *testing.T) {
	s, _ := testServer(t)

	rr := postJSON(t, s, "/api/validate-materials", map[string]string{
		"material":  "palladium",
		"style":     "pave",
		"engraving": "deep",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var v geometry.Validation
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.Valid {
		t.Fatal("palladium + deep engraving must be invalid")
	}
	if v.Message != "Palladium is too soft for deep engraving" {
		t.Fatalf("message = %q", v.Message)
	}

	rr = postJSON(t, s, "/api/validate-materials", map[string]string{
		"material": "gold", "style": "solitaire", "engraving": "deep",
	})
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !v.Valid {
		t.Fatalf("gold + deep should be valid: %s", v.Message)
	}
}

func TestPricingEndpointIsStatic(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/pricing")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["basePrice"] != float64(1000) || resp["estimatedTotal"] != float64(1500) {
		t.Fatalf("unexpected pricing: %v", resp)
	}
	if resp["estimatedDays"] != "30-35" {
		t.Fatalf("estimatedDays = %v", resp["estimatedDays"])
	}
}

func TestListPartsGroupsByPrefix(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/3dmodels-ring/parts")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Success bool     `json:"success"`
		Band    []string `json:"band"`
		Head    []string `json:"head"`
		Stone   []string `json:"stone"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success {
		t.Fatal("success = false")
	}
	if len(resp.Band) != 2 || len(resp.Head) != 1 || len(resp.Stone) != 1 {
		t.Fatalf("grouping wrong: %+v", resp)
	}
	// Files without a recognized prefix are skipped, not errors.
	for _, name := range resp.Band {
		if name == "notes.txt" {
			t.Fatal("unprefixed file leaked into listing")
		}
	}
}

func TestServePart(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/3dmodels-ring/BAND/BAND_CLASSIC.glb")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Body.String() != "glTF" {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestServePartRejectsUnknownType(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/3dmodels-ring/CLASP/CLASP_X.glb")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["error"] != "Invalid type" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestServePartRejectsPrefixMismatch(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/3dmodels-ring/BAND/STONE_BRILLIANT.glb")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["error"] != "Filename/type mismatch" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestServePartMissingFile(t *testing.T) {
	s, _ := testServer(t)

	rr := getJSON(t, s, "/api/3dmodels-ring/BAND/BAND_MISSING.glb")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t)
	if rr := getJSON(t, s, "/health"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}
