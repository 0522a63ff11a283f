// Package geometry models the external collaborator that recomputes the
// 3D model for geometry-class edits. The core only depends on the Service
// interface; production talks JSON over HTTP to the backend, tests and the
// offline REPL use the in-process simulator.
package geometry

import (
	"context"

	"github.com/jewelify/design-engine/internal/design"
)

// #region result
// Result is the collaborator's answer to a geometry update: the new model
// asset plus the backend's own price/lead-time estimate and some
// simulation metadata.
type Result struct {
	ModelPath      string `json:"modelPath"`
	Price          int    `json:"price"`
	Days           string `json:"days"`
	Weight         string `json:"weight,omitempty"`
	ProcessingTime string `json:"processingTime,omitempty"`
}

// #endregion result

// #region service
// Service is the abstract async collaborator. UpdateGeometry blocks until
// the recomputation resolves or ctx is done; it is the only failure path
// in the edit pipeline.
type Service interface {
	UpdateGeometry(ctx context.Context, cfg design.Config) (Result, error)
}

// #endregion service
