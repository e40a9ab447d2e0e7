package heatmap

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

func TestSynthesizeTilesPitch(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	rec := Synthesize(models.Player{ID: 9, Name: "Test"}, DefaultGridSize, rng)

	if got, want := len(rec.Zones), DefaultGridSize*DefaultGridSize; got != want {
		t.Fatalf("zones = %d, want %d", got, want)
	}

	var area float64
	union := r2.EmptyRect()
	for i, z := range rec.Zones {
		zr := ZoneRect(z)
		size := zr.Size()
		area += size.X * size.Y
		union = union.Union(zr)

		for j := i + 1; j < len(rec.Zones); j++ {
			if zr.InteriorIntersects(ZoneRect(rec.Zones[j])) {
				t.Fatalf("zones %d and %d overlap: %v %v", i, j, zr, ZoneRect(rec.Zones[j]))
			}
		}
	}

	if math.Abs(area-PitchWidth*PitchHeight) > 1e-6 {
		t.Errorf("covered area = %v, want %v", area, PitchWidth*PitchHeight)
	}
	if !union.ApproxEqual(Pitch) {
		t.Errorf("union = %v, want %v", union, Pitch)
	}
}

func TestSynthesizeIntensityRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	rec := Synthesize(models.Player{}, 0, rng)

	if rec.GridSize != DefaultGridSize {
		t.Errorf("GridSize = %d, want default %d", rec.GridSize, DefaultGridSize)
	}
	for i, z := range rec.Zones {
		if z.Intensity < 0 || z.Intensity >= FallbackMaxIntensity {
			t.Errorf("zone %d intensity %v outside [0, 50)", i, z.Intensity)
		}
		if math.Abs(z.NormalizedIntensity-z.Intensity/FallbackMaxIntensity) > 1e-12 {
			t.Errorf("zone %d normalized %v, want %v", i, z.NormalizedIntensity, z.Intensity/FallbackMaxIntensity)
		}
	}
}

func TestSynthesizeDeterministicWithSeed(t *testing.T) {
	a := Synthesize(models.Player{}, 5, rand.New(rand.NewPCG(42, 42)))
	b := Synthesize(models.Player{}, 5, rand.New(rand.NewPCG(42, 42)))
	for i := range a.Zones {
		if a.Zones[i] != b.Zones[i] {
			t.Fatalf("zone %d differs: %+v vs %+v", i, a.Zones[i], b.Zones[i])
		}
	}
}

func TestGridZonesFormula(t *testing.T) {
	zones := GridZones(10)
	// x columns are scanned outermost
	z := zones[1*10+2]
	if z.XMin != 12 || z.XMax != 24 || z.YMin != 16 || z.YMax != 24 {
		t.Errorf("zone (1,2) = %+v", z)
	}
}
