package heatmap

import (
	"testing"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		intensity  []float64
		wantActive int
		wantMax    int
	}{
		{name: "empty uses zero sentinel", intensity: nil, wantActive: 0, wantMax: 0},
		{name: "single zone rounds down", intensity: []float64{37.4}, wantActive: 1, wantMax: 37},
		{name: "half rounds up", intensity: []float64{2.5, 1}, wantActive: 2, wantMax: 3},
		{name: "zeros are inactive", intensity: []float64{0, 0, 4, 0}, wantActive: 1, wantMax: 4},
		{name: "all zero", intensity: []float64{0, 0}, wantActive: 0, wantMax: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var zones []models.HeatZone
			for _, v := range tt.intensity {
				zones = append(zones, models.HeatZone{XMin: 0, XMax: 12, YMin: 0, YMax: 8, Intensity: v})
			}

			got := Summarize(zones)
			if got.ActiveZoneCount != tt.wantActive {
				t.Errorf("ActiveZoneCount = %d, want %d", got.ActiveZoneCount, tt.wantActive)
			}
			if got.MaxIntensity != tt.wantMax {
				t.Errorf("MaxIntensity = %d, want %d", got.MaxIntensity, tt.wantMax)
			}
			if got.ZoneCount != len(zones) {
				t.Errorf("ZoneCount = %d, want %d", got.ZoneCount, len(zones))
			}
		})
	}
}

func TestSummarizeMeanAndP90(t *testing.T) {
	zones := []models.HeatZone{
		{Intensity: 0}, {Intensity: 10}, {Intensity: 20}, {Intensity: 30},
	}
	got := Summarize(zones)
	if got.MeanIntensity != 20 {
		t.Errorf("MeanIntensity = %v, want 20", got.MeanIntensity)
	}
	if got.P90Intensity != 28 {
		t.Errorf("P90Intensity = %v, want 28", got.P90Intensity)
	}
}
