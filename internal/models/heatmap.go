package models

// Player identifies the player a heat map belongs to
type Player struct {
	ID            int64  `json:"id" db:"player_id"`
	CompetitionID int64  `json:"competition_id,omitempty" db:"competition_id"`
	SeasonID      int64  `json:"season_id,omitempty" db:"season_id"`
	Name          string `json:"name" db:"name"`
	Team          string `json:"team" db:"team"`
	JerseyNumber  *int   `json:"jersey_number,omitempty" db:"jersey_number"` // Optional
	Position      string `json:"position,omitempty" db:"position"`           // Optional
}

// HeatZone is a rectangular pitch cell with an activity intensity.
// Coordinates are pitch-space units (0-120 by 0-80).
type HeatZone struct {
	XMin float64 `json:"x_min" db:"x_min"`
	XMax float64 `json:"x_max" db:"x_max"`
	YMin float64 `json:"y_min" db:"y_min"`
	YMax float64 `json:"y_max" db:"y_max"`

	Intensity           float64 `json:"intensity" db:"intensity"`                       // Event count or weighted count
	NormalizedIntensity float64 `json:"normalized_intensity" db:"normalized_intensity"` // 0-1
}

// HeatMapRecord is one player's full set of heat zones for a competition season
type HeatMapRecord struct {
	Player        Player     `json:"player"`
	CompetitionID int64      `json:"competition_id"`
	SeasonID      int64      `json:"season_id"`
	TotalEvents   int        `json:"total_events"`
	GridSize      int        `json:"grid_size,omitempty"`
	Zones         []HeatZone `json:"zones"`
}

// HeatRect is a drawable rectangle positioned in percent of the pitch container
type HeatRect struct {
	LeftPct   float64 `json:"left_pct"`
	TopPct    float64 `json:"top_pct"`
	WidthPct  float64 `json:"width_pct"`
	HeightPct float64 `json:"height_pct"`
	Color     string  `json:"color"` // CSS rgba()
	Intensity float64 `json:"intensity"`
	Tooltip   string  `json:"tooltip_text"`
}

// HeatmapSummary holds figures derived from the whole zone set
type HeatmapSummary struct {
	ZoneCount       int     `json:"zone_count"`
	ActiveZoneCount int     `json:"active_zone_count"`
	MaxIntensity    int     `json:"max_intensity"` // 0 when there are no zones
	MeanIntensity   float64 `json:"mean_intensity"`
	P90Intensity    float64 `json:"p90_intensity"`
}

// ZoneRejection reports a zone that failed validation and was not drawn
type ZoneRejection struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// HeatmapView is the render output for a single heat-map record
type HeatmapView struct {
	Player      Player          `json:"player"`
	TotalEvents int             `json:"total_events"`
	Rects       []HeatRect      `json:"rects"`
	Summary     HeatmapSummary  `json:"summary"`
	Rejected    []ZoneRejection `json:"rejected,omitempty"`
}

// Heat-map record sources
const (
	HeatmapSourceStored    = "stored"
	HeatmapSourceSynthetic = "synthetic"
)

// HeatmapResponse represents the heatmap API response
type HeatmapResponse struct {
	CompetitionID int64       `json:"competition_id"`
	SeasonID      int64       `json:"season_id"`
	Source        string      `json:"source"`        // "stored" or "synthetic"
	Normalization string      `json:"normalization"` // "max" or "fixed:<scale>"
	SessionID     string      `json:"session_id,omitempty"`
	Generation    uint64      `json:"generation,omitempty"`
	View          HeatmapView `json:"view"`
}
