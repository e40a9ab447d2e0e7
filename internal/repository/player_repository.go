package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List retrieves the players of a competition season, grouped by team
func (r *PlayerRepository) List(ctx context.Context, competitionID, seasonID int64) ([]models.Player, error) {
	query := `SELECT player_id, competition_id, season_id, name, team, jersey_number, position
		FROM players
		WHERE competition_id = ? AND season_id = ?
		ORDER BY team, name`

	rows, err := r.db.QueryContext(ctx, query, competitionID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *p)
	}

	return players, rows.Err()
}

// Get retrieves one player of a competition season
func (r *PlayerRepository) Get(ctx context.Context, competitionID, seasonID, playerID int64) (*models.Player, error) {
	query := `SELECT player_id, competition_id, season_id, name, team, jersey_number, position
		FROM players
		WHERE competition_id = ? AND season_id = ? AND player_id = ?`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, competitionID, seasonID, playerID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return p, nil
}

// UpsertMany inserts or updates players in one transaction.
// A known jersey number or position is never overwritten with an empty one.
func (r *PlayerRepository) UpsertMany(players []models.Player) error {
	query := `INSERT INTO players (competition_id, season_id, player_id, name, team, jersey_number, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (competition_id, season_id, player_id) DO UPDATE SET
			name = excluded.name,
			team = excluded.team,
			jersey_number = COALESCE(excluded.jersey_number, players.jersey_number),
			position = CASE WHEN excluded.position = '' THEN players.position ELSE excluded.position END`

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare player upsert: %w", err)
		}
		defer stmt.Close()

		for _, p := range players {
			var jersey sql.NullInt64
			if p.JerseyNumber != nil {
				jersey = sql.NullInt64{Int64: int64(*p.JerseyNumber), Valid: true}
			}
			if _, err := stmt.Exec(p.CompetitionID, p.SeasonID, p.ID, p.Name, p.Team, jersey, p.Position); err != nil {
				return fmt.Errorf("failed to upsert player %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var p models.Player
	var jersey sql.NullInt64
	if err := row.Scan(&p.ID, &p.CompetitionID, &p.SeasonID, &p.Name, &p.Team, &jersey, &p.Position); err != nil {
		return nil, err
	}
	if jersey.Valid {
		n := int(jersey.Int64)
		p.JerseyNumber = &n
	}
	return &p, nil
}
