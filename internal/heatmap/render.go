package heatmap

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jengzang/futbol-backend-go/internal/models"
)

// Render converts a heat-map record into drawable rectangles plus its summary.
//
// Zones with zero intensity produce nothing. Zones that fail ValidateZone are
// skipped and listed in the view's Rejected slice; they never abort the render
// and are left out of the summary.
// Colours come from each zone's NormalizedIntensity as supplied, so callers
// normalize first.
func Render(rec models.HeatMapRecord) models.HeatmapView {
	view := models.HeatmapView{
		Player:      rec.Player,
		TotalEvents: rec.TotalEvents,
		Rects:       make([]models.HeatRect, 0, len(rec.Zones)),
		Summary:     Summarize(Valid(rec.Zones)),
	}

	for i, z := range rec.Zones {
		if err := ValidateZone(z); err != nil {
			view.Rejected = append(view.Rejected, models.ZoneRejection{Index: i, Reason: err.Error()})
			continue
		}
		if z.Intensity == 0 {
			continue
		}

		p := Place(z)
		view.Rects = append(view.Rects, models.HeatRect{
			LeftPct:   p.LeftPct,
			TopPct:    p.TopPct,
			WidthPct:  p.WidthPct,
			HeightPct: p.HeightPct,
			Color:     Ramp(z.NormalizedIntensity).CSS(),
			Intensity: z.Intensity,
			Tooltip:   Tooltip(z),
		})
	}

	return view
}

// Tooltip describes a zone for hover text
func Tooltip(z models.HeatZone) string {
	return fmt.Sprintf("%d events (%d%%) in x %s-%s, y %s-%s",
		int(math.Round(z.Intensity)),
		int(math.Round(clampUnit(z.NormalizedIntensity)*100)),
		coord(z.XMin), coord(z.XMax), coord(z.YMin), coord(z.YMax))
}

func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
