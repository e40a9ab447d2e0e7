package heatmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/stats"
)

// Normalization modes
const (
	NormalizeMax   = "max"
	NormalizeFixed = "fixed"
)

// Normalization decides how raw intensities are scaled into [0,1]
type Normalization struct {
	Mode  string
	Scale float64 // Divisor, fixed mode only
}

// ByMax scales every zone against the largest intensity in the set
func ByMax() Normalization {
	return Normalization{Mode: NormalizeMax}
}

// Fixed scales every zone against a constant divisor
func Fixed(scale float64) Normalization {
	return Normalization{Mode: NormalizeFixed, Scale: scale}
}

// ParseNormalization builds a normalization from a mode name and scale
func ParseNormalization(mode string, scale float64) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", NormalizeMax:
		return ByMax(), nil
	case NormalizeFixed:
		if !(scale > 0) || math.IsInf(scale, 0) {
			return Normalization{}, fmt.Errorf("fixed normalization needs a positive scale, got %g", scale)
		}
		return Fixed(scale), nil
	default:
		return Normalization{}, fmt.Errorf("unknown normalization mode: %s", mode)
	}
}

// String reports the normalization as "max" or "fixed:<scale>"
func (n Normalization) String() string {
	if n.Mode == NormalizeFixed {
		return NormalizeFixed + ":" + strconv.FormatFloat(n.Scale, 'f', -1, 64)
	}
	return NormalizeMax
}

// Apply returns a copy of zones with NormalizedIntensity filled in.
// The input slice is not modified. In max mode the divisor comes from valid
// zones only, so a malformed entry cannot rescale the rest.
func (n Normalization) Apply(zones []models.HeatZone) []models.HeatZone {
	scale := n.Scale
	if n.Mode != NormalizeFixed {
		scale = maxIntensity(Valid(zones))
	}

	out := make([]models.HeatZone, len(zones))
	copy(out, zones)
	for i := range out {
		if scale <= 0 || !(out[i].Intensity > 0) {
			out[i].NormalizedIntensity = 0
			continue
		}
		out[i].NormalizedIntensity = clampUnit(out[i].Intensity / scale)
	}
	return out
}

func maxIntensity(zones []models.HeatZone) float64 {
	values := make([]float64, 0, len(zones))
	for _, z := range zones {
		if !math.IsNaN(z.Intensity) && !math.IsInf(z.Intensity, 0) {
			values = append(values, z.Intensity)
		}
	}
	return stats.Max(values)
}
