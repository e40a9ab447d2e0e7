package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

// HeatmapRepository handles database operations for stored heat-map records
type HeatmapRepository struct {
	db *sql.DB
}

// NewHeatmapRepository creates a new heatmap repository
func NewHeatmapRepository(db *sql.DB) *HeatmapRepository {
	return &HeatmapRepository{db: db}
}

// GetRecord loads a player's record with zones in grid scan order.
// Player metadata comes from the players table when present.
func (r *HeatmapRepository) GetRecord(ctx context.Context, competitionID, seasonID, playerID int64) (*models.HeatMapRecord, error) {
	query := `SELECT h.total_events, h.grid_size,
			COALESCE(p.name, ''), COALESCE(p.team, ''), p.jersey_number, COALESCE(p.position, '')
		FROM heatmap_records h
		LEFT JOIN players p
			ON p.competition_id = h.competition_id
			AND p.season_id = h.season_id
			AND p.player_id = h.player_id
		WHERE h.competition_id = ? AND h.season_id = ? AND h.player_id = ?`

	rec := &models.HeatMapRecord{
		CompetitionID: competitionID,
		SeasonID:      seasonID,
		Player: models.Player{
			ID:            playerID,
			CompetitionID: competitionID,
			SeasonID:      seasonID,
		},
	}
	var jersey sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, competitionID, seasonID, playerID).Scan(
		&rec.TotalEvents, &rec.GridSize,
		&rec.Player.Name, &rec.Player.Team, &jersey, &rec.Player.Position,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("heatmap for player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get heatmap record: %w", err)
	}
	if jersey.Valid {
		n := int(jersey.Int64)
		rec.Player.JerseyNumber = &n
	}

	rows, err := r.db.QueryContext(ctx, `SELECT x_min, x_max, y_min, y_max, intensity
		FROM heat_zones
		WHERE competition_id = ? AND season_id = ? AND player_id = ?
		ORDER BY zone_index`, competitionID, seasonID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query heat zones: %w", err)
	}
	defer rows.Close()

	rec.Zones = []models.HeatZone{}
	for rows.Next() {
		var z models.HeatZone
		if err := rows.Scan(&z.XMin, &z.XMax, &z.YMin, &z.YMax, &z.Intensity); err != nil {
			return nil, fmt.Errorf("failed to scan heat zone: %w", err)
		}
		rec.Zones = append(rec.Zones, z)
	}

	return rec, rows.Err()
}

// ReplaceRecord swaps a player's stored record for rec in one transaction.
// Normalized intensities are not stored; they are derived at read time.
func (r *HeatmapRepository) ReplaceRecord(rec models.HeatMapRecord) error {
	comp, season, player := rec.CompetitionID, rec.SeasonID, rec.Player.ID

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM heat_zones WHERE competition_id = ? AND season_id = ? AND player_id = ?`,
			comp, season, player); err != nil {
			return fmt.Errorf("failed to clear heat zones: %w", err)
		}

		_, err := tx.Exec(`INSERT INTO heatmap_records (competition_id, season_id, player_id, total_events, grid_size)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (competition_id, season_id, player_id) DO UPDATE SET
				total_events = excluded.total_events,
				grid_size = excluded.grid_size,
				updated_at = CURRENT_TIMESTAMP`,
			comp, season, player, rec.TotalEvents, rec.GridSize)
		if err != nil {
			return fmt.Errorf("failed to upsert heatmap record: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO heat_zones
			(competition_id, season_id, player_id, zone_index, x_min, x_max, y_min, y_max, intensity)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare zone insert: %w", err)
		}
		defer stmt.Close()

		for i, z := range rec.Zones {
			if _, err := stmt.Exec(comp, season, player, i, z.XMin, z.XMax, z.YMin, z.YMax, z.Intensity); err != nil {
				return fmt.Errorf("failed to insert heat zone %d: %w", i, err)
			}
		}
		return nil
	})
}
