package pricing

import (
	"testing"

	"github.com/jewelify/design-engine/internal/design"
)

func TestEstimatePriceDefault(t *testing.T) {
	// Default: gold color, 0.7/0.7 quality, clear stone. Only the base
	// and the dynamic detailing term apply.
	got := EstimatePrice(design.Default())
	want := 1200 + 140
	if got != want {
		t.Fatalf("EstimatePrice(default) = %d, want %d", got, want)
	}
}

func TestEstimatePriceUpcharges(t *testing.T) {
	cfg := design.Default()
	cfg.MaterialColor = design.ColorPlatinum
	cfg.Polish = 0.8
	cfg.Clarity = 0.9
	cfg.StoneColor = design.StoneBlue

	// 1200 + 600 + 150 + 120 + 180 + round(1.7*100)
	want := 1200 + 600 + 150 + 120 + 180 + 170
	if got := EstimatePrice(cfg); got != want {
		t.Fatalf("EstimatePrice = %d, want %d", got, want)
	}
}

func TestEstimatePriceClampsTotalOnly(t *testing.T) {
	cfg := design.Default()
	cfg.MaterialColor = design.ColorPlatinum
	cfg.StoneColor = design.StoneRed
	cfg.Polish = 2.0
	cfg.Clarity = 2.0

	if got := EstimatePrice(cfg); got != 2500 {
		t.Fatalf("EstimatePrice = %d, want ceiling 2500", got)
	}
	if raw := RawPrice(cfg); raw <= 2500 {
		t.Fatalf("RawPrice = %d, expected above the ceiling", raw)
	}

	low := design.Default()
	low.Polish = 0
	low.Clarity = 0
	if got := EstimatePrice(low); got != 1200 {
		t.Fatalf("EstimatePrice = %d, want floor 1200", got)
	}
}

func TestBreakdownSumsToRawPrice(t *testing.T) {
	configs := []design.Config{
		design.Default(),
		func() design.Config {
			c := design.Default()
			c.MaterialColor = design.ColorRose
			c.StoneColor = design.StoneGreen
			c.Polish = 0.9
			c.Clarity = 0.55
			return c
		}(),
		func() design.Config {
			c := design.Default()
			c.MaterialColor = design.ColorPlatinum
			c.Polish = 0.95
			c.Clarity = 0.95
			c.StoneColor = design.StonePink
			return c
		}(),
	}

	for i, cfg := range configs {
		sum := 0
		for _, item := range Breakdown(cfg) {
			sum += item.Amount
		}
		if raw := RawPrice(cfg); sum != raw {
			t.Fatalf("config %d: breakdown sum %d != raw price %d", i, sum, raw)
		}
	}
}

func TestBreakdownLabels(t *testing.T) {
	cfg := design.Default()
	cfg.MaterialColor = design.ColorPlatinum
	cfg.Polish = 0.8
	cfg.Clarity = 0.8
	cfg.StoneColor = design.StoneRed

	want := []string{
		"Base craftsmanship",
		"Platinum material upcharge",
		"High polish finish",
		"Stone clarity selection",
		"Colored gemstone",
		"Detailing & QC (polish/clarity)",
	}
	items := Breakdown(cfg)
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, label := range want {
		if items[i].Label != label {
			t.Fatalf("item %d label = %q, want %q", i, items[i].Label, label)
		}
	}
}

func TestEstimateDays(t *testing.T) {
	// 60 - 8 - 7 + 5 - round(1.7*5) = 41
	cfg := design.Default()
	cfg.MaterialColor = design.ColorPlatinum
	cfg.Polish = 0.8
	cfg.Clarity = 0.9
	if got := EstimateDays(cfg); got != "41-46" {
		t.Fatalf("EstimateDays = %s, want 41-46", got)
	}

	// Default: 60 - round(1.4*5) = 53.
	if got := EstimateDays(design.Default()); got != "53-58" {
		t.Fatalf("EstimateDays(default) = %s, want 53-58", got)
	}
}

func TestEstimateDaysClamp(t *testing.T) {
	fast := design.Default()
	fast.Polish = 3.0
	fast.Clarity = 3.0
	if got := EstimateDays(fast); got != "25-30" {
		t.Fatalf("EstimateDays = %s, want floor 25-30", got)
	}

	slow := design.Default()
	slow.MaterialColor = design.ColorPlatinum
	slow.StoneColor = design.StoneBlue
	slow.Polish = 0
	slow.Clarity = 0
	if got := EstimateDays(slow); got != "60-65" {
		t.Fatalf("EstimateDays = %s, want ceiling 60-65", got)
	}
}
