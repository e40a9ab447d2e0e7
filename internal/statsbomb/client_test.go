package statsbomb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const lineupsJSON = `[
  {"team_id": 217, "team_name": "Barcelona", "lineup": [
    {"player_id": 5503, "player_name": "Lionel Andrés Messi Cuccittini", "player_nickname": "Lionel Messi",
     "jersey_number": 10, "positions": [{"position_id": 17, "position": "Right Wing", "from": "00:00", "to": null}]},
    {"player_id": 6374, "player_name": "Nélson Cabral Semedo", "player_nickname": null,
     "jersey_number": 2, "positions": []}
  ]}
]`

const eventsJSON = `[
  {"id": "a", "index": 1, "period": 1, "minute": 0, "type": {"id": 35, "name": "Starting XI"}, "team": {"id": 217, "name": "Barcelona"}},
  {"id": "b", "index": 2, "period": 1, "minute": 1, "type": {"id": 30, "name": "Pass"}, "team": {"id": 217, "name": "Barcelona"},
   "player": {"id": 5503, "name": "Lionel Andrés Messi Cuccittini"}, "position": {"id": 17, "name": "Right Wing"}, "location": [61.0, 40.1]},
  {"id": "c", "index": 3, "period": 1, "minute": 2, "type": {"id": 16, "name": "Shot"}, "team": {"id": 217, "name": "Barcelona"},
   "player": {"id": 5503, "name": "Lionel Andrés Messi Cuccittini"}, "location": [108.2, 36.5, 0.3]}
]`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/competitions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"competition_id": 11, "season_id": 90, "country_name": "Spain", "competition_name": "La Liga", "season_name": "2020/2021"}]`))
	})
	mux.HandleFunc("/matches/11/90.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"match_id": 3773386, "match_date": "2021-02-13", "home_team": {"home_team_id": 217, "home_team_name": "Barcelona"},
			"away_team": {"away_team_id": 206, "away_team_name": "Deportivo Alavés"}, "home_score": 5, "away_score": 1,
			"competition_stage": {"id": 1, "name": "Regular Season"}, "stadium": {"id": 5, "name": "Spotify Camp Nou"}, "referee": null}]`))
	})
	mux.HandleFunc("/lineups/3773386.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(lineupsJSON))
	})
	mux.HandleFunc("/events/3773386.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetchesDocuments(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL+"/", 5*time.Second)
	ctx := context.Background()

	comps, err := c.Competitions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 1 || comps[0].CompetitionName != "La Liga" {
		t.Errorf("competitions = %+v", comps)
	}

	matches, err := c.Matches(ctx, 11, 90)
	if err != nil {
		t.Fatal(err)
	}
	detail := ToMatchDetail(matches[0], 11, 90)
	if detail.MatchRound != "Regular Season" || detail.Stadium != "Spotify Camp Nou" || detail.Referee != "" {
		t.Errorf("detail = %+v", detail)
	}
	if detail.HomeTeam != "Barcelona" || detail.HomeScore != 5 {
		t.Errorf("detail teams = %+v", detail)
	}

	lineups, err := c.Lineups(ctx, 3773386)
	if err != nil {
		t.Fatal(err)
	}
	players := LineupPlayers(lineups, 11, 90)
	if len(players) != 2 {
		t.Fatalf("players = %+v", players)
	}
	if players[0].Name != "Lionel Messi" || players[0].Position != "Right Wing" || *players[0].JerseyNumber != 10 {
		t.Errorf("player 0 = %+v", players[0])
	}
	if players[1].Name != "Nélson Cabral Semedo" || players[1].Position != "" {
		t.Errorf("player 1 = %+v", players[1])
	}

	events, err := c.Events(ctx, 3773386)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d", len(events))
	}
	if _, _, ok := events[0].Location2D(); ok {
		t.Error("event without location reported one")
	}
	if x, y, ok := events[2].Location2D(); !ok || x != 108.2 || y != 36.5 {
		t.Errorf("3D location = %v, %v, %v", x, y, ok)
	}
}

func TestClientStatusError(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second)

	_, err := c.Events(context.Background(), 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if statusErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
}

func TestClientHonoursContext(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Competitions(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
