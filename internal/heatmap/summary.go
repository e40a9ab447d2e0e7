package heatmap

import (
	"math"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/stats"
)

// Summarize derives zone counts and intensity figures from a zone set.
// MaxIntensity is the largest rounded intensity, or 0 when there are no zones.
func Summarize(zones []models.HeatZone) models.HeatmapSummary {
	summary := models.HeatmapSummary{ZoneCount: len(zones)}
	if len(zones) == 0 {
		return summary
	}

	intensities := make([]float64, 0, len(zones))
	maxRounded := math.Inf(-1)
	for _, z := range zones {
		if math.IsNaN(z.Intensity) || math.IsInf(z.Intensity, 0) {
			continue
		}
		intensities = append(intensities, z.Intensity)
		if r := math.Round(z.Intensity); r > maxRounded {
			maxRounded = r
		}
	}
	if len(intensities) == 0 {
		return summary
	}

	active := stats.Positive(intensities)
	summary.ActiveZoneCount = len(active)
	summary.MaxIntensity = int(math.Max(maxRounded, 0))
	summary.MeanIntensity = round2(stats.Mean(active))
	summary.P90Intensity = round2(stats.Percentile(active, 90))
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
