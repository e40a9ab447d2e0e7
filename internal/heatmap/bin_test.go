package heatmap

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestBinnerCounts(t *testing.T) {
	b := NewBinner(10)
	b.Add(r2.Point{X: 1, Y: 1})
	b.Add(r2.Point{X: 11.9, Y: 7.9})
	b.Add(r2.Point{X: 60, Y: 40})
	b.Add(r2.Point{X: 120, Y: 80}) // far corner lands in the last cell
	b.Add(r2.Point{X: 130, Y: -5}) // clamped onto the pitch
	b.Add(r2.Point{X: math.NaN(), Y: 3})

	if b.Total() != 5 {
		t.Errorf("Total = %d, want 5", b.Total())
	}

	zones := b.Zones()
	if len(zones) != 100 {
		t.Fatalf("zones = %d, want 100", len(zones))
	}
	if zones[0].Intensity != 2 {
		t.Errorf("first cell = %v, want 2", zones[0].Intensity)
	}
	if zones[5*10+5].Intensity != 1 {
		t.Errorf("centre cell = %v, want 1", zones[55].Intensity)
	}
	if zones[99].Intensity != 1 {
		t.Errorf("last cell = %v, want 1", zones[99].Intensity)
	}
	if zones[9*10+0].Intensity != 1 {
		t.Errorf("clamped cell = %v, want 1", zones[90].Intensity)
	}

	var sum float64
	for _, z := range zones {
		sum += z.Intensity
	}
	if int(sum) != b.Total() {
		t.Errorf("sum of intensities %v != total %d", sum, b.Total())
	}
}
