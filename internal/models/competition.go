package models

// Season is a single season of a competition
type Season struct {
	SeasonID   int64  `json:"season_id" db:"season_id"`
	SeasonName string `json:"season_name" db:"season_name"`
}

// Competition groups all seasons of one competition
type Competition struct {
	CompetitionID   int64    `json:"competition_id" db:"competition_id"`
	CompetitionName string   `json:"competition_name" db:"competition_name"`
	CountryName     string   `json:"country_name" db:"country_name"`
	Seasons         []Season `json:"seasons"`
}

// FlatCompetition is one competition-season row, the shape dropdowns consume
type FlatCompetition struct {
	CompetitionID   int64  `json:"competition_id" db:"competition_id"`
	SeasonID        int64  `json:"season_id" db:"season_id"`
	CompetitionName string `json:"competition_name" db:"competition_name"`
	SeasonName      string `json:"season_name" db:"season_name"`
	CountryName     string `json:"country_name" db:"country_name"`
}

// GroupCompetitions folds flat rows into competitions with nested seasons.
// Competition order follows first appearance in rows.
func GroupCompetitions(rows []FlatCompetition) []Competition {
	index := make(map[int64]int)
	var out []Competition
	for _, r := range rows {
		i, ok := index[r.CompetitionID]
		if !ok {
			i = len(out)
			index[r.CompetitionID] = i
			out = append(out, Competition{
				CompetitionID:   r.CompetitionID,
				CompetitionName: r.CompetitionName,
				CountryName:     r.CountryName,
				Seasons:         []Season{},
			})
		}
		out[i].Seasons = append(out[i].Seasons, Season{SeasonID: r.SeasonID, SeasonName: r.SeasonName})
	}
	return out
}
