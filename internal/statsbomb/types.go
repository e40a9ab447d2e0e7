package statsbomb

// Competition is one row of competitions.json (one per competition season)
type Competition struct {
	CompetitionID     int64  `json:"competition_id"`
	SeasonID          int64  `json:"season_id"`
	CountryName       string `json:"country_name"`
	CompetitionName   string `json:"competition_name"`
	CompetitionGender string `json:"competition_gender"`
	SeasonName        string `json:"season_name"`
}

// Named is the {id, name} pair the provider uses for most references
type Named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Match is one row of matches/{competition}/{season}.json
type Match struct {
	MatchID     int64  `json:"match_id"`
	MatchDate   string `json:"match_date"`
	KickOff     string `json:"kick_off"`
	Competition struct {
		CompetitionID   int64  `json:"competition_id"`
		CompetitionName string `json:"competition_name"`
	} `json:"competition"`
	Season struct {
		SeasonID   int64  `json:"season_id"`
		SeasonName string `json:"season_name"`
	} `json:"season"`
	HomeTeam struct {
		HomeTeamID   int64  `json:"home_team_id"`
		HomeTeamName string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		AwayTeamID   int64  `json:"away_team_id"`
		AwayTeamName string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore        int    `json:"home_score"`
	AwayScore        int    `json:"away_score"`
	MatchWeek        int    `json:"match_week"`
	CompetitionStage *Named `json:"competition_stage"`
	Stadium          *Named `json:"stadium"`
	Referee          *Named `json:"referee"`
}

// TeamLineup is one team's entry in lineups/{match}.json
type TeamLineup struct {
	TeamID   int64          `json:"team_id"`
	TeamName string         `json:"team_name"`
	Lineup   []LineupPlayer `json:"lineup"`
}

// LineupPlayer is a player listed in a team lineup
type LineupPlayer struct {
	PlayerID       int64            `json:"player_id"`
	PlayerName     string           `json:"player_name"`
	PlayerNickname *string          `json:"player_nickname"`
	JerseyNumber   *int             `json:"jersey_number"`
	Positions      []LineupPosition `json:"positions"`
}

// LineupPosition is a stint at one position during a match
type LineupPosition struct {
	PositionID int    `json:"position_id"`
	Position   string `json:"position"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// Event is one entry of events/{match}.json; only fields used for heat maps are decoded
type Event struct {
	ID       string    `json:"id"`
	Index    int       `json:"index"`
	Period   int       `json:"period"`
	Minute   int       `json:"minute"`
	Type     Named     `json:"type"`
	Team     Named     `json:"team"`
	Player   *Named    `json:"player"`
	Position *Named    `json:"position"`
	Location []float64 `json:"location"`
}

// Location2D returns the event's pitch location when it has one
func (e Event) Location2D() (x, y float64, ok bool) {
	if len(e.Location) < 2 {
		return 0, 0, false
	}
	return e.Location[0], e.Location[1], true
}
