package heatmap

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// Binner counts event locations into a gridSize x gridSize partition of the
// pitch. Locations outside the pitch are clamped onto its edge.
type Binner struct {
	gridSize int
	counts   []float64
	total    int
}

// NewBinner creates a binner with the same cell layout as GridZones
func NewBinner(gridSize int) *Binner {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}
	return &Binner{
		gridSize: gridSize,
		counts:   make([]float64, gridSize*gridSize),
	}
}

// Add records one event location. NaN coordinates are ignored.
func (b *Binner) Add(p r2.Point) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return
	}
	p = Pitch.ClampPoint(p)

	i := cellIndex(p.X, PitchWidth, b.gridSize)
	j := cellIndex(p.Y, PitchHeight, b.gridSize)
	b.counts[i*b.gridSize+j]++
	b.total++
}

// Total returns the number of locations added
func (b *Binner) Total() int {
	return b.total
}

// GridSize returns the number of cells per side
func (b *Binner) GridSize() int {
	return b.gridSize
}

// Zones returns every cell, in GridZones order, with its count as intensity
func (b *Binner) Zones() []models.HeatZone {
	zones := GridZones(b.gridSize)
	for k := range zones {
		zones[k].Intensity = b.counts[k]
	}
	return zones
}

func cellIndex(v, extent float64, n int) int {
	idx := int(v / (extent / float64(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
