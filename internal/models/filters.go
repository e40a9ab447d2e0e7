package models

// MatchFilter represents filter parameters for querying matches
type MatchFilter struct {
	CompetitionID int64  `form:"competition_id"`
	SeasonID      int64  `form:"season_id"`
	Round         string `form:"round"` // Exact match_round value
	Limit         int    `form:"limit"` // Max matches, 0 for all
}

// HeatmapFilter represents query parameters for heat-map requests
type HeatmapFilter struct {
	Normalize string  `json:"normalize,omitempty" form:"normalize"` // max, fixed
	Scale     float64 `json:"scale,omitempty" form:"scale"`         // Divisor for fixed normalization
	GridSize  int     `json:"grid,omitempty" form:"grid"`           // Grid size for synthetic fallback
	Fallback  *bool   `json:"fallback,omitempty" form:"fallback"`   // Synthesize when nothing is stored (default true)
}

// ImportFilter represents filter parameters for listing import tasks
type ImportFilter struct {
	Status string `form:"status"` // pending, running, completed, failed
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
