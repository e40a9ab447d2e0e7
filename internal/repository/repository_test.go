package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jengzang/futbol-backend-go/internal/database"
	"github.com/jengzang/futbol-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := database.NewMigrationManager(db).RunMigrations(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func intPtr(n int) *int { return &n }

func TestCompetitionRepository(t *testing.T) {
	repo := NewCompetitionRepository(newTestDB(t))

	err := repo.UpsertMany([]models.FlatCompetition{
		{CompetitionID: 11, SeasonID: 90, CompetitionName: "La Liga", SeasonName: "2020/2021", CountryName: "Spain"},
		{CompetitionID: 11, SeasonID: 42, CompetitionName: "La Liga", SeasonName: "2019/2020", CountryName: "Spain"},
		{CompetitionID: 43, SeasonID: 106, CompetitionName: "FIFA World Cup", SeasonName: "2022", CountryName: "International"},
	})
	if err != nil {
		t.Fatalf("UpsertMany: %v", err)
	}

	flat, err := repo.ListFlat()
	if err != nil {
		t.Fatal(err)
	}
	if len(flat) != 3 {
		t.Fatalf("ListFlat = %d rows, want 3", len(flat))
	}
	grouped := models.GroupCompetitions(flat)
	if len(grouped) != 2 {
		t.Errorf("grouped = %d competitions, want 2", len(grouped))
	}

	seasons, err := repo.Seasons(11)
	if err != nil {
		t.Fatal(err)
	}
	if len(seasons) != 2 || seasons[0].SeasonName != "2020/2021" {
		t.Errorf("Seasons(11) = %+v", seasons)
	}

	if _, err := repo.Seasons(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Seasons(999) error = %v, want ErrNotFound", err)
	}
}

func TestMatchRepository(t *testing.T) {
	repo := NewMatchRepository(newTestDB(t))

	matches := []models.MatchDetail{
		{Match: models.Match{MatchID: 1, MatchDate: "2021-03-01", MatchRound: "Regular Season", HomeTeam: "Barcelona", AwayTeam: "Sevilla", HomeScore: 2, CompetitionID: 11, SeasonID: 90}, Stadium: "Camp Nou"},
		{Match: models.Match{MatchID: 2, MatchDate: "2021-01-10", MatchRound: "Regular Season", HomeTeam: "Real Madrid", AwayTeam: "Getafe", CompetitionID: 11, SeasonID: 90}},
		{Match: models.Match{MatchID: 3, MatchDate: "2021-05-20", MatchRound: "Final", HomeTeam: "Athletic Club", AwayTeam: "Barcelona", AwayScore: 4, CompetitionID: 11, SeasonID: 90}},
		{Match: models.Match{MatchID: 4, MatchDate: "2020-05-20", HomeTeam: "A", AwayTeam: "B", CompetitionID: 11, SeasonID: 42}},
	}
	if err := repo.UpsertMany(matches); err != nil {
		t.Fatal(err)
	}

	all, err := repo.List(models.MatchFilter{CompetitionID: 11, SeasonID: 90})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].MatchID != 2 {
		t.Errorf("List = %+v", all)
	}

	regular, _ := repo.List(models.MatchFilter{CompetitionID: 11, SeasonID: 90, Round: "Regular Season", Limit: 1})
	if len(regular) != 1 || regular[0].MatchID != 2 {
		t.Errorf("round+limit = %+v", regular)
	}

	if err := repo.SetEventsCount(1, 3500); err != nil {
		t.Fatal(err)
	}
	detail, err := repo.GetByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Stadium != "Camp Nou" || detail.EventsCount != 3500 {
		t.Errorf("detail = %+v", detail)
	}

	if _, err := repo.GetByID(404); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(404) error = %v", err)
	}
}

func TestPlayerRepositoryKeepsKnownMetadata(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))
	ctx := context.Background()

	first := models.Player{ID: 5503, CompetitionID: 11, SeasonID: 90, Name: "Lionel Messi", Team: "Barcelona", JerseyNumber: intPtr(10), Position: "Right Wing"}
	if err := repo.UpsertMany([]models.Player{first}); err != nil {
		t.Fatal(err)
	}
	second := models.Player{ID: 5503, CompetitionID: 11, SeasonID: 90, Name: "Lionel Messi", Team: "Barcelona"}
	if err := repo.UpsertMany([]models.Player{second}); err != nil {
		t.Fatal(err)
	}

	p, err := repo.Get(ctx, 11, 90, 5503)
	if err != nil {
		t.Fatal(err)
	}
	if p.JerseyNumber == nil || *p.JerseyNumber != 10 || p.Position != "Right Wing" {
		t.Errorf("metadata lost: %+v", p)
	}

	list, err := repo.List(ctx, 11, 90)
	if err != nil || len(list) != 1 {
		t.Errorf("List = %+v, %v", list, err)
	}

	if _, err := repo.Get(ctx, 11, 90, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing player error = %v", err)
	}
}

func TestHeatmapRepositoryReplaceRecord(t *testing.T) {
	db := newTestDB(t)
	players := NewPlayerRepository(db)
	repo := NewHeatmapRepository(db)
	ctx := context.Background()

	if err := players.UpsertMany([]models.Player{{ID: 7, CompetitionID: 1, SeasonID: 2, Name: "Winger", Team: "Club"}}); err != nil {
		t.Fatal(err)
	}

	rec := models.HeatMapRecord{
		Player:        models.Player{ID: 7},
		CompetitionID: 1,
		SeasonID:      2,
		TotalEvents:   3,
		GridSize:      2,
		Zones: []models.HeatZone{
			{XMin: 0, XMax: 60, YMin: 0, YMax: 40, Intensity: 1},
			{XMin: 0, XMax: 60, YMin: 40, YMax: 80, Intensity: 2},
		},
	}
	if err := repo.ReplaceRecord(rec); err != nil {
		t.Fatal(err)
	}

	rec.TotalEvents = 5
	rec.Zones = rec.Zones[:1]
	rec.Zones[0].Intensity = 5
	if err := repo.ReplaceRecord(rec); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetRecord(ctx, 1, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalEvents != 5 || len(got.Zones) != 1 || got.Zones[0].Intensity != 5 {
		t.Errorf("record not replaced wholesale: %+v", got)
	}
	if got.Player.Name != "Winger" || got.Player.JerseyNumber != nil {
		t.Errorf("player = %+v", got.Player)
	}

	if _, err := repo.GetRecord(ctx, 1, 2, 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing record error = %v", err)
	}
}

func TestImportTaskRepositoryLifecycle(t *testing.T) {
	repo := NewImportTaskRepository(newTestDB(t))

	task := &models.ImportTask{CompetitionID: 11, SeasonID: 90, GridSize: 10, Status: models.TaskStatusPending, CreatedBy: "test"}
	if err := repo.Create(task); err != nil {
		t.Fatal(err)
	}
	if task.ID == 0 {
		t.Fatal("ID not assigned")
	}

	if err := repo.MarkAsRunning(task.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetTotal(task.ID, 4); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateProgress(task.ID, 2, 1, 50); err != nil {
		t.Fatal(err)
	}
	if err := repo.MarkAsCompleted(task.ID, 30); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByID(task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.TaskStatusCompleted || got.ProgressPercent != 100 || got.PlayersImported != 30 {
		t.Errorf("task = %+v", got)
	}
	if got.TotalMatches != 4 || got.ProcessedMatches != 2 || got.FailedMatches != 1 {
		t.Errorf("counters = %+v", got)
	}

	list, err := repo.List(models.ImportFilter{Status: models.TaskStatusCompleted})
	if err != nil || len(list) != 1 {
		t.Errorf("List = %v, %v", list, err)
	}

	if _, err := repo.GetByID(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(999) = %v", err)
	}
}
