package design

import "testing"

func TestClampQuality(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.0, 0.3},
		{0.3, 0.3},
		{0.5, 0.5},
		{0.95, 0.95},
		{1.2, 0.95},
		{-1, 0.3},
	}
	for _, c := range cases {
		if got := ClampQuality(c.in); got != c.want {
			t.Fatalf("ClampQuality(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestColorFor(t *testing.T) {
	cases := []struct {
		material Material
		want     MaterialColor
	}{
		{MaterialGold, ColorGold},
		{MaterialSilver, ColorSilver},
		{MaterialRose, ColorRose},
		{MaterialPlatinum, ColorPlatinum},
		{MaterialPalladium, ColorPlatinum},
		{Material("titanium"), ColorGold},
	}
	for _, c := range cases {
		if got := ColorFor(c.material); got != c.want {
			t.Fatalf("ColorFor(%s) = %s, want %s", c.material, got, c.want)
		}
	}
}

func TestDefaultIsNormalized(t *testing.T) {
	cfg := Default()

	if cfg.MaterialColor != ColorFor(cfg.Material) {
		t.Fatalf("default materialColor %s does not follow material %s", cfg.MaterialColor, cfg.Material)
	}
	if cfg.Polish < QualityMin || cfg.Polish > QualityMax {
		t.Fatalf("default polish %v outside bounds", cfg.Polish)
	}
	if cfg.BandPath != "/models/ring/BAND_CLASSIC.glb" {
		t.Fatalf("unexpected band path %s", cfg.BandPath)
	}
	if cfg.StonePath != "/models/ring/STONE_BRILLIANT.glb" {
		t.Fatalf("unexpected stone path %s", cfg.StonePath)
	}
}

func TestReconcilePreservesColorOverride(t *testing.T) {
	cfg := Default()
	cfg.Material = MaterialPlatinum
	cfg.MaterialColor = ColorRose // user override via head edit
	cfg.Polish = 2.0

	out := Reconcile(cfg)
	if out.MaterialColor != ColorRose {
		t.Fatalf("Reconcile changed materialColor to %s", out.MaterialColor)
	}
	if out.Polish != QualityMax {
		t.Fatalf("Reconcile polish = %v, want %v", out.Polish, QualityMax)
	}
}

func TestNormalizeDerivesColorFromMaterial(t *testing.T) {
	cfg := Default()
	cfg.Material = MaterialPalladium
	cfg.MaterialColor = ColorRose

	out := Normalize(cfg)
	if out.MaterialColor != ColorPlatinum {
		t.Fatalf("Normalize materialColor = %s, want platinum", out.MaterialColor)
	}
}

func TestReconcileRecomputesAssetPaths(t *testing.T) {
	cfg := Default()
	cfg.BandDesign = BandKnife
	cfg.StoneShape = ShapeGem

	out := Reconcile(cfg)
	if out.BandPath != "/models/ring/BAND_KNIFE.glb" {
		t.Fatalf("band path = %s", out.BandPath)
	}
	if out.StonePath != "/models/ring/STONE_GEM.glb" {
		t.Fatalf("stone path = %s", out.StonePath)
	}
}

func TestFallbackDefaults(t *testing.T) {
	cfg := Fallback("")
	if cfg.ModelPath != "/models/Bracelet.obj" {
		t.Fatalf("fallback model path = %s", cfg.ModelPath)
	}
	if cfg.Material != MaterialPalladium || cfg.MaterialColor != ColorPlatinum {
		t.Fatalf("fallback material = %s color = %s", cfg.Material, cfg.MaterialColor)
	}

	cfg = Fallback("/models/Custom.glb")
	if cfg.ModelPath != "/models/Custom.glb" {
		t.Fatalf("fallback custom model path = %s", cfg.ModelPath)
	}
}
