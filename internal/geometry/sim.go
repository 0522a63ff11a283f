package geometry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/jewelify/design-engine/internal/design"
)

// #region sim-config
// SimConfig holds the tunables for the simulated backend. Tests zero the
// delay bounds so geometry edits resolve immediately.
type SimConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// DefaultSimConfig mirrors the production mock: 2-4 s of simulated mesh
// work per request.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		MinDelay: 2 * time.Second,
		MaxDelay: 4 * time.Second,
	}
}

// #endregion sim-config

// #region price-tables
// Per-gram material prices, style multipliers, and engraving costs used by
// the simulated recomputation. Unknown values fall back to the defaults
// rather than erroring.
var materialPricePerGram = map[design.Material]float64{
	design.MaterialPalladium: 100,
	design.MaterialGold:      80,
	design.MaterialSilver:    50,
	design.MaterialPlatinum:  150,
}

var styleMultiplier = map[design.Style]float64{
	design.StylePave:       1.5,
	design.StyleSolitaire:  1.0,
	design.StyleHalo:       1.8,
	design.StyleThreeStone: 1.6,
}

var engravingCost = map[design.Engraving]float64{
	design.EngravingLaser:   50,
	design.EngravingHand:    100,
	design.EngravingMachine: 40,
	design.EngravingEtched:  60,
	design.EngravingDeep:    120,
}

const defaultPricePerGram = 100

// Placeholder asset until real model generation exists.
const simulatedModelPath = "https://raw.githubusercontent.com/KhronosGroup/glTF-Sample-Models/master/2.0/DamagedHelmet/glTF-Binary/DamagedHelmet.glb"

// #endregion price-tables

// #region simulator
// Simulator is an in-process Service that stands in for the real geometry
// backend: it waits a random interval inside the configured bounds, then
// prices the piece from its own tables. The random source is injected so
// replay and tests stay deterministic.
type Simulator struct {
	config SimConfig
	rng    *rand.Rand
}

// NewSimulator creates a simulator with the given config and random
// source. A nil rng gets a time-seeded one.
func NewSimulator(config SimConfig, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{config: config, rng: rng}
}

// UpdateGeometry simulates a mesh recomputation. It honors ctx
// cancellation during the simulated delay, so a torn-down session never
// receives a late result.
func (s *Simulator) UpdateGeometry(ctx context.Context, cfg design.Config) (Result, error) {
	delay := s.config.MinDelay
	if spread := s.config.MaxDelay - s.config.MinDelay; spread > 0 {
		delay += time.Duration(s.rng.Int63n(int64(spread)))
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("geometry update: %w", ctx.Err())
		case <-timer.C:
		}
	}

	perGram, ok := materialPricePerGram[cfg.Material]
	if !ok {
		perGram = defaultPricePerGram
	}
	mult, ok := styleMultiplier[cfg.Style]
	if !ok {
		mult = 1.0
	}

	weight := s.rng.Float64()*5 + 10 // 10-15 grams simulated
	total := int(math.Round(perGram*weight*mult + engravingCost[cfg.Engraving] + 1000))

	daysMin := s.rng.Intn(10) + 25
	return Result{
		ModelPath:      simulatedModelPath,
		Price:          total,
		Days:           fmt.Sprintf("%d-%d", daysMin, daysMin+5),
		Weight:         fmt.Sprintf("%.2f", weight),
		ProcessingTime: fmt.Sprintf("%.1fs", delay.Seconds()),
	}, nil
}

// #endregion simulator
