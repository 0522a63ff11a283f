package geometry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jewelify/design-engine/internal/design"
)

// #region client
// Client talks to the geometry backend over JSON/HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL (no trailing
// slash).
func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, http: http.DefaultClient}
}

// NewClientWithHTTP creates a Client with an injected *http.Client.
// Used for testing against httptest servers with custom transports.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

// #endregion client

// #region update-geometry
// geometryUpdateResponse mirrors the backend's geometry-update payload.
// The backend echoes the submitted config fields alongside the result;
// only the result fields matter here.
type geometryUpdateResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	Message        string `json:"message,omitempty"`
	ModelPath      string `json:"modelPath"`
	Price          int    `json:"price"`
	Days           string `json:"days"`
	Weight         string `json:"weight"`
	ProcessingTime string `json:"processingTime"`
}

// UpdateGeometry posts the full configuration to /api/geometry-update and
// returns the recomputation result.
func (c *Client) UpdateGeometry(ctx context.Context, cfg design.Config) (Result, error) {
	body, err := json.Marshal(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("marshal config: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/geometry-update", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geometry update: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geometry update: server returned %s", resp.Status)
	}

	var payload geometryUpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("decode geometry response: %w", err)
	}
	if !payload.Success {
		msg := payload.Message
		if msg == "" {
			msg = payload.Error
		}
		return Result{}, fmt.Errorf("geometry update rejected: %s", msg)
	}

	return Result{
		ModelPath:      payload.ModelPath,
		Price:          payload.Price,
		Days:           payload.Days,
		Weight:         payload.Weight,
		ProcessingTime: payload.ProcessingTime,
	}, nil
}

// #endregion update-geometry

// #region validate-materials
// ValidateMaterials asks the backend whether a material/style/engraving
// combination is manufacturable.
func (c *Client) ValidateMaterials(ctx context.Context, material design.Material, style design.Style, engraving design.Engraving) (Validation, error) {
	body, err := json.Marshal(map[string]string{
		"material":  string(material),
		"style":     string(style),
		"engraving": string(engraving),
	})
	if err != nil {
		return Validation{}, fmt.Errorf("marshal validation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate-materials", bytes.NewReader(body))
	if err != nil {
		return Validation{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Validation{}, fmt.Errorf("validate materials: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Validation{}, fmt.Errorf("validate materials: server returned %s", resp.Status)
	}

	var v Validation
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return Validation{}, fmt.Errorf("decode validation response: %w", err)
	}
	return v, nil
}

// #endregion validate-materials
