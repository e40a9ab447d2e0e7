package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

// CompetitionRepository handles database operations for competitions and seasons
type CompetitionRepository struct {
	db *sql.DB
}

// NewCompetitionRepository creates a new competition repository
func NewCompetitionRepository(db *sql.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

// ListFlat retrieves every competition-season row
func (r *CompetitionRepository) ListFlat() ([]models.FlatCompetition, error) {
	query := `SELECT competition_id, season_id, competition_name, season_name, country_name
		FROM competitions
		ORDER BY competition_name, competition_id, season_name DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitions: %w", err)
	}
	defer rows.Close()

	out := []models.FlatCompetition{}
	for rows.Next() {
		var c models.FlatCompetition
		if err := rows.Scan(&c.CompetitionID, &c.SeasonID, &c.CompetitionName, &c.SeasonName, &c.CountryName); err != nil {
			return nil, fmt.Errorf("failed to scan competition: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Seasons retrieves the seasons of one competition
func (r *CompetitionRepository) Seasons(competitionID int64) ([]models.Season, error) {
	query := `SELECT season_id, season_name FROM competitions
		WHERE competition_id = ?
		ORDER BY season_name DESC`

	rows, err := r.db.Query(query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query seasons: %w", err)
	}
	defer rows.Close()

	seasons := []models.Season{}
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.SeasonID, &s.SeasonName); err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(seasons) == 0 {
		return nil, fmt.Errorf("competition %d: %w", competitionID, ErrNotFound)
	}
	return seasons, nil
}

// UpsertMany inserts or updates competition-season rows in one transaction
func (r *CompetitionRepository) UpsertMany(rows []models.FlatCompetition) error {
	query := `INSERT INTO competitions (competition_id, season_id, competition_name, season_name, country_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (competition_id, season_id) DO UPDATE SET
			competition_name = excluded.competition_name,
			season_name = excluded.season_name,
			country_name = excluded.country_name,
			updated_at = CURRENT_TIMESTAMP`

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare competition upsert: %w", err)
		}
		defer stmt.Close()

		for _, c := range rows {
			if _, err := stmt.Exec(c.CompetitionID, c.SeasonID, c.CompetitionName, c.SeasonName, c.CountryName); err != nil {
				return fmt.Errorf("failed to upsert competition %d/%d: %w", c.CompetitionID, c.SeasonID, err)
			}
		}
		return nil
	})
}
