package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/jewelify/design-engine/internal/geometry"
	"github.com/jewelify/design-engine/internal/server"
)

// #region main
func main() {
	addr := flag.String("addr", envOr("MOCKSERVER_ADDR", ":3001"), "listen address")
	assets := flag.String("assets", envOr("MOCKSERVER_ASSETS", "public/3Dmodels_ring"), "ring asset directory")
	minDelay := flag.Duration("min-delay", 2*time.Second, "minimum simulated processing delay")
	maxDelay := flag.Duration("max-delay", 4*time.Second, "maximum simulated processing delay")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	flag.Parse()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	sim := geometry.NewSimulator(geometry.SimConfig{
		MinDelay: *minDelay,
		MaxDelay: *maxDelay,
	}, rng)

	srv := server.NewServer(sim, *assets)

	log.Printf("[SERVER] listening at %s", *addr)
	log.Printf("[SERVER] endpoints: POST /api/geometry-update, POST /api/validate-materials, GET /api/pricing, GET /api/3dmodels-ring/parts, GET /ws")
	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
