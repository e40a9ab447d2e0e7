package models

// Match represents basic match information
type Match struct {
	MatchID       int64  `json:"match_id" db:"match_id"`
	MatchDate     string `json:"match_date" db:"match_date"` // YYYY-MM-DD
	MatchRound    string `json:"match_round,omitempty" db:"match_round"`
	HomeTeam      string `json:"home_team" db:"home_team"`
	AwayTeam      string `json:"away_team" db:"away_team"`
	HomeScore     int    `json:"home_score" db:"home_score"`
	AwayScore     int    `json:"away_score" db:"away_score"`
	CompetitionID int64  `json:"competition_id" db:"competition_id"`
	SeasonID      int64  `json:"season_id" db:"season_id"`
}

// MatchDetail extends Match with venue and officiating information
type MatchDetail struct {
	Match
	Stadium     string `json:"stadium,omitempty" db:"stadium"`
	Referee     string `json:"referee,omitempty" db:"referee"`
	EventsCount int    `json:"events_count" db:"events_count"`
}
