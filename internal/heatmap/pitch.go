// Package heatmap turns per-player pitch zones into drawable overlay rectangles.
//
// All coordinates are pitch-space units: x runs 0-120 along the length of the
// pitch and y runs 0-80 across it, origin in one corner.
package heatmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// Standard normalized pitch dimensions used by the data provider
const (
	PitchWidth  = 120.0
	PitchHeight = 80.0
)

// boundsMargin absorbs float drift in grid edges computed as (W/n)*(i+1)
const boundsMargin = 1e-9

// Pitch is the full pitch extent
var Pitch = r2.Rect{
	X: r1.Interval{Lo: 0, Hi: PitchWidth},
	Y: r1.Interval{Lo: 0, Hi: PitchHeight},
}

// ErrInvalidZone is returned for zones that cannot be drawn
var ErrInvalidZone = errors.New("invalid heat zone")

// Placement is a zone position in percent of the pitch container
type Placement struct {
	LeftPct   float64
	TopPct    float64
	WidthPct  float64
	HeightPct float64
}

// ZoneRect returns the zone bounds as a rectangle
func ZoneRect(z models.HeatZone) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: z.XMin, Hi: z.XMax},
		Y: r1.Interval{Lo: z.YMin, Hi: z.YMax},
	}
}

// ValidateZone checks that a zone is finite, non-degenerate, inside the pitch
// and carries a non-negative intensity
func ValidateZone(z models.HeatZone) error {
	for _, v := range []float64{z.XMin, z.XMax, z.YMin, z.YMax, z.Intensity, z.NormalizedIntensity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidZone)
		}
	}
	if z.XMin >= z.XMax {
		return fmt.Errorf("%w: x_min %g >= x_max %g", ErrInvalidZone, z.XMin, z.XMax)
	}
	if z.YMin >= z.YMax {
		return fmt.Errorf("%w: y_min %g >= y_max %g", ErrInvalidZone, z.YMin, z.YMax)
	}
	if !Pitch.ExpandedByMargin(boundsMargin).Contains(ZoneRect(z)) {
		return fmt.Errorf("%w: %v outside pitch", ErrInvalidZone, ZoneRect(z))
	}
	if z.Intensity < 0 {
		return fmt.Errorf("%w: negative intensity %g", ErrInvalidZone, z.Intensity)
	}
	return nil
}

// Valid returns the zones that pass ValidateZone, in input order
func Valid(zones []models.HeatZone) []models.HeatZone {
	out := make([]models.HeatZone, 0, len(zones))
	for _, z := range zones {
		if ValidateZone(z) == nil {
			out = append(out, z)
		}
	}
	return out
}

// Place maps a zone from pitch space to percentages of the container
func Place(z models.HeatZone) Placement {
	return Placement{
		LeftPct:   z.XMin / PitchWidth * 100,
		TopPct:    z.YMin / PitchHeight * 100,
		WidthPct:  (z.XMax - z.XMin) / PitchWidth * 100,
		HeightPct: (z.YMax - z.YMin) / PitchHeight * 100,
	}
}
