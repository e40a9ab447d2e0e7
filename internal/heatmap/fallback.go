package heatmap

import (
	"math"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// Synthetic data policy used when no live record is available
const (
	DefaultGridSize      = 10
	FallbackMaxIntensity = 50.0
)

// Float64Source yields uniform values in [0,1); *rand.Rand satisfies it
type Float64Source interface {
	Float64() float64
}

// GridZones partitions the pitch into gridSize x gridSize zones with zero
// intensity, scanning x columns outermost
func GridZones(gridSize int) []models.HeatZone {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}

	cellW := PitchWidth / float64(gridSize)
	cellH := PitchHeight / float64(gridSize)
	zones := make([]models.HeatZone, 0, gridSize*gridSize)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			zones = append(zones, models.HeatZone{
				XMin: cellW * float64(i),
				XMax: cellW * float64(i+1),
				YMin: cellH * float64(j),
				YMax: cellH * float64(j+1),
			})
		}
	}
	return zones
}

// Synthesize builds a stand-in record for a player: every grid cell gets a
// uniform random intensity in [0, 50), normalized by the fixed divisor 50
func Synthesize(player models.Player, gridSize int, src Float64Source) models.HeatMapRecord {
	if gridSize <= 0 {
		gridSize = DefaultGridSize
	}

	zones := GridZones(gridSize)
	total := 0
	for i := range zones {
		v := src.Float64() * FallbackMaxIntensity
		zones[i].Intensity = v
		zones[i].NormalizedIntensity = v / FallbackMaxIntensity
		total += int(math.Round(v))
	}

	return models.HeatMapRecord{
		Player:        player,
		CompetitionID: player.CompetitionID,
		SeasonID:      player.SeasonID,
		TotalEvents:   total,
		GridSize:      gridSize,
		Zones:         zones,
	}
}
