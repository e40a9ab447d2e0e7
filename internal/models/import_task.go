package models

import "time"

// ImportTask tracks loading one competition season from the data provider
type ImportTask struct {
	ID int64 `json:"id" db:"id"`

	// Task identification
	CompetitionID int64 `json:"competition_id" db:"competition_id"`
	SeasonID      int64 `json:"season_id" db:"season_id"`
	MaxMatches    int   `json:"max_matches,omitempty" db:"max_matches"` // 0 means all matches
	GridSize      int   `json:"grid_size" db:"grid_size"`

	// Status
	Status          string `json:"status" db:"status"` // pending, running, completed, failed
	ProgressPercent int    `json:"progress_percent" db:"progress_percent"`

	// Execution info
	TotalMatches     int   `json:"total_matches" db:"total_matches"`
	ProcessedMatches int   `json:"processed_matches" db:"processed_matches"`
	FailedMatches    int   `json:"failed_matches" db:"failed_matches"`
	StartTime        int64 `json:"start_time,omitempty" db:"start_time"` // Unix timestamp
	EndTime          int64 `json:"end_time,omitempty" db:"end_time"`     // Unix timestamp

	// Results
	PlayersImported int    `json:"players_imported" db:"players_imported"`
	ErrorMessage    string `json:"error_message,omitempty" db:"error_message"`

	// Metadata
	CreatedBy string    `json:"created_by,omitempty" db:"created_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TaskStatus constants
const (
	TaskStatusPending   = "pending"
	TaskStatusRunning   = "running"
	TaskStatusCompleted = "completed"
	TaskStatusFailed    = "failed"
)
