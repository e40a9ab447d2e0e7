package heatmap

import (
	"fmt"
	"math"
	"strconv"
)

// ZoneAlpha is the fixed opacity of every drawn zone
const ZoneAlpha = 0.7

// Ramp segment boundaries over normalized intensity
const (
	yellowStop = 0.33
	orangeStop = 0.66
)

// RGBA is a zone fill colour
type RGBA struct {
	R, G, B uint8
	A       float64
}

// CSS formats the colour as a CSS rgba() value
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Ramp maps a normalized intensity onto the blue -> yellow -> orange -> red
// gradient. Input outside [0,1] is clamped.
func Ramp(n float64) RGBA {
	if math.IsNaN(n) {
		n = 0
	}
	n = clampUnit(n)

	switch {
	case n < yellowStop:
		r := clampUnit(n / yellowStop)
		return RGBA{R: channel(255 * r), G: channel(255 * r), B: channel(255 * (1 - r)), A: ZoneAlpha}
	case n < orangeStop:
		r := clampUnit((n - yellowStop) / (orangeStop - yellowStop))
		return RGBA{R: 255, G: channel(255 - 128*r), B: 0, A: ZoneAlpha}
	default:
		r := clampUnit((n - orangeStop) / (1 - orangeStop))
		return RGBA{R: 255, G: channel(127 - 127*r), B: 0, A: ZoneAlpha}
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
