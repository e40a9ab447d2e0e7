package statsbomb

import "github.com/jengzang/futbol-backend-go/internal/models"

// ToFlatCompetitions converts provider rows into stored competition rows
func ToFlatCompetitions(in []Competition) []models.FlatCompetition {
	out := make([]models.FlatCompetition, 0, len(in))
	for _, c := range in {
		out = append(out, models.FlatCompetition{
			CompetitionID:   c.CompetitionID,
			SeasonID:        c.SeasonID,
			CompetitionName: c.CompetitionName,
			SeasonName:      c.SeasonName,
			CountryName:     c.CountryName,
		})
	}
	return out
}

// ToMatchDetail converts a provider match. The round is the competition
// stage name, e.g. "Regular Season" or "Final".
func ToMatchDetail(m Match, competitionID, seasonID int64) models.MatchDetail {
	d := models.MatchDetail{
		Match: models.Match{
			MatchID:       m.MatchID,
			MatchDate:     m.MatchDate,
			HomeTeam:      m.HomeTeam.HomeTeamName,
			AwayTeam:      m.AwayTeam.AwayTeamName,
			HomeScore:     m.HomeScore,
			AwayScore:     m.AwayScore,
			CompetitionID: competitionID,
			SeasonID:      seasonID,
		},
	}
	if m.CompetitionStage != nil {
		d.MatchRound = m.CompetitionStage.Name
	}
	if m.Stadium != nil {
		d.Stadium = m.Stadium.Name
	}
	if m.Referee != nil {
		d.Referee = m.Referee.Name
	}
	return d
}

// ToMatchDetails converts a season's matches
func ToMatchDetails(in []Match, competitionID, seasonID int64) []models.MatchDetail {
	out := make([]models.MatchDetail, 0, len(in))
	for _, m := range in {
		out = append(out, ToMatchDetail(m, competitionID, seasonID))
	}
	return out
}

// LineupPlayers flattens match lineups into players of a competition season.
// The nickname is preferred over the full name; position is the first listed.
func LineupPlayers(lineups []TeamLineup, competitionID, seasonID int64) []models.Player {
	var out []models.Player
	for _, team := range lineups {
		for _, lp := range team.Lineup {
			name := lp.PlayerName
			if lp.PlayerNickname != nil && *lp.PlayerNickname != "" {
				name = *lp.PlayerNickname
			}
			p := models.Player{
				ID:            lp.PlayerID,
				CompetitionID: competitionID,
				SeasonID:      seasonID,
				Name:          name,
				Team:          team.TeamName,
				JerseyNumber:  lp.JerseyNumber,
			}
			if len(lp.Positions) > 0 {
				p.Position = lp.Positions[0].Position
			}
			out = append(out, p)
		}
	}
	return out
}
