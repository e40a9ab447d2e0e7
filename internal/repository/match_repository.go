package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sql.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// List retrieves matches of a competition season, oldest first
func (r *MatchRepository) List(filter models.MatchFilter) ([]models.Match, error) {
	query := `SELECT match_id, match_date, match_round, home_team, away_team,
		home_score, away_score, competition_id, season_id
		FROM matches
		WHERE competition_id = ? AND season_id = ?`
	args := []interface{}{filter.CompetitionID, filter.SeasonID}

	if filter.Round != "" {
		query += " AND match_round = ?"
		args = append(args, filter.Round)
	}

	query += " ORDER BY match_date ASC, match_id ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := []models.Match{}
	for rows.Next() {
		var m models.Match
		err := rows.Scan(
			&m.MatchID, &m.MatchDate, &m.MatchRound, &m.HomeTeam, &m.AwayTeam,
			&m.HomeScore, &m.AwayScore, &m.CompetitionID, &m.SeasonID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

// CountForSeason returns how many matches are stored for a competition season
func (r *MatchRepository) CountForSeason(competitionID, seasonID int64) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM matches WHERE competition_id = ? AND season_id = ?`,
		competitionID, seasonID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}

// GetByID retrieves a single match with its detail columns
func (r *MatchRepository) GetByID(id int64) (*models.MatchDetail, error) {
	query := `SELECT match_id, match_date, match_round, home_team, away_team,
		home_score, away_score, competition_id, season_id,
		stadium, referee, events_count
		FROM matches WHERE match_id = ?`

	var m models.MatchDetail
	err := r.db.QueryRow(query, id).Scan(
		&m.MatchID, &m.MatchDate, &m.MatchRound, &m.HomeTeam, &m.AwayTeam,
		&m.HomeScore, &m.AwayScore, &m.CompetitionID, &m.SeasonID,
		&m.Stadium, &m.Referee, &m.EventsCount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &m, nil
}

// UpsertMany inserts or updates matches in one transaction
func (r *MatchRepository) UpsertMany(matches []models.MatchDetail) error {
	query := `INSERT INTO matches (
			match_id, competition_id, season_id, match_date, match_round,
			home_team, away_team, home_score, away_score, stadium, referee, events_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (match_id) DO UPDATE SET
			competition_id = excluded.competition_id,
			season_id = excluded.season_id,
			match_date = excluded.match_date,
			match_round = excluded.match_round,
			home_team = excluded.home_team,
			away_team = excluded.away_team,
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			stadium = excluded.stadium,
			referee = excluded.referee,
			updated_at = CURRENT_TIMESTAMP`

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare match upsert: %w", err)
		}
		defer stmt.Close()

		for _, m := range matches {
			_, err := stmt.Exec(
				m.MatchID, m.CompetitionID, m.SeasonID, m.MatchDate, m.MatchRound,
				m.HomeTeam, m.AwayTeam, m.HomeScore, m.AwayScore, m.Stadium, m.Referee, m.EventsCount,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert match %d: %w", m.MatchID, err)
			}
		}
		return nil
	})
}

// SetEventsCount records how many events were read for a match
func (r *MatchRepository) SetEventsCount(matchID int64, count int) error {
	_, err := r.db.Exec(`UPDATE matches SET events_count = ?, updated_at = CURRENT_TIMESTAMP WHERE match_id = ?`, count, matchID)
	if err != nil {
		return fmt.Errorf("failed to update events count: %w", err)
	}
	return nil
}
