package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/golang/geo/r2"

	"github.com/jengzang/futbol-backend-go/internal/heatmap"
	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/statsbomb"
)

// Provider is the subset of the open-data client the importer needs
type Provider interface {
	CatalogProvider
	Lineups(ctx context.Context, matchID int64) ([]statsbomb.TeamLineup, error)
	Events(ctx context.Context, matchID int64) ([]statsbomb.Event, error)
}

// ImportRequest describes a competition season to import
type ImportRequest struct {
	CompetitionID int64 `json:"competition_id" binding:"required"`
	SeasonID      int64 `json:"season_id" binding:"required"`
	MaxMatches    int   `json:"max_matches"` // 0 imports every match
	GridSize      int   `json:"grid_size"`
}

// ImportService loads provider data into storage as background tasks
type ImportService struct {
	tasks        *repository.ImportTaskRepository
	competitions *repository.CompetitionRepository
	matches      *repository.MatchRepository
	players      *repository.PlayerRepository
	heatmaps     *repository.HeatmapRepository
	provider     Provider
	gridSize     int
}

// NewImportService creates a new import service
func NewImportService(
	tasks *repository.ImportTaskRepository,
	competitions *repository.CompetitionRepository,
	matches *repository.MatchRepository,
	players *repository.PlayerRepository,
	heatmaps *repository.HeatmapRepository,
	provider Provider,
	gridSize int,
) *ImportService {
	if gridSize <= 0 {
		gridSize = heatmap.DefaultGridSize
	}
	return &ImportService{
		tasks:        tasks,
		competitions: competitions,
		matches:      matches,
		players:      players,
		heatmaps:     heatmaps,
		provider:     provider,
		gridSize:     gridSize,
	}
}

// CreateTask records a pending import task and starts it in the background
func (s *ImportService) CreateTask(req ImportRequest, createdBy string) (*models.ImportTask, error) {
	task, err := s.newTask(req, createdBy)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.Run(context.Background(), task); err != nil {
			log.Printf("[ImportService] Task %d failed: %v", task.ID, err)
		}
	}()

	return task, nil
}

// RunNow records an import task and executes it in the calling goroutine
func (s *ImportService) RunNow(ctx context.Context, req ImportRequest, createdBy string) (*models.ImportTask, error) {
	task, err := s.newTask(req, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.Run(ctx, task); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(task.ID)
}

func (s *ImportService) newTask(req ImportRequest, createdBy string) (*models.ImportTask, error) {
	if req.CompetitionID <= 0 || req.SeasonID <= 0 {
		return nil, fmt.Errorf("%w: competition_id and season_id are required", ErrInvalidInput)
	}
	if req.MaxMatches < 0 {
		return nil, fmt.Errorf("%w: max_matches must not be negative", ErrInvalidInput)
	}
	gridSize := req.GridSize
	if gridSize == 0 {
		gridSize = s.gridSize
	}
	if gridSize < 1 || gridSize > maxGridSize {
		return nil, fmt.Errorf("%w: grid_size must be between 1 and %d", ErrInvalidInput, maxGridSize)
	}

	task := &models.ImportTask{
		CompetitionID: req.CompetitionID,
		SeasonID:      req.SeasonID,
		MaxMatches:    req.MaxMatches,
		GridSize:      gridSize,
		Status:        models.TaskStatusPending,
		CreatedBy:     createdBy,
	}
	if err := s.tasks.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetTask retrieves a task by ID
func (s *ImportService) GetTask(id int64) (*models.ImportTask, error) {
	return s.tasks.GetByID(id)
}

// ListTasks retrieves tasks with optional filters
func (s *ImportService) ListTasks(filter models.ImportFilter) ([]*models.ImportTask, error) {
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.tasks.List(filter)
}

// Run executes an import task, recording progress per match. The task is
// marked failed when the season cannot be listed or every match fails.
func (s *ImportService) Run(ctx context.Context, task *models.ImportTask) error {
	log.Printf("[ImportService] Starting task %d (competition %d, season %d)", task.ID, task.CompetitionID, task.SeasonID)
	startTime := time.Now()

	if err := s.tasks.MarkAsRunning(task.ID); err != nil {
		return err
	}

	imported, err := s.run(ctx, task)
	if err != nil {
		s.tasks.MarkAsFailed(task.ID, err.Error())
		return err
	}

	if err := s.tasks.MarkAsCompleted(task.ID, imported); err != nil {
		return err
	}
	log.Printf("[ImportService] Task %d completed: %d players in %v", task.ID, imported, time.Since(startTime))
	return nil
}

func (s *ImportService) run(ctx context.Context, task *models.ImportTask) (int, error) {
	comps, err := s.provider.Competitions(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch competitions: %w", err)
	}
	if err := s.competitions.UpsertMany(statsbomb.ToFlatCompetitions(comps)); err != nil {
		return 0, err
	}

	matches, err := s.provider.Matches(ctx, task.CompetitionID, task.SeasonID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch matches: %w", err)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchDate < matches[j].MatchDate
	})

	// the whole season is listed; MaxMatches only limits which events are binned
	if err := s.matches.UpsertMany(statsbomb.ToMatchDetails(matches, task.CompetitionID, task.SeasonID)); err != nil {
		return 0, err
	}
	if task.MaxMatches > 0 && len(matches) > task.MaxMatches {
		matches = matches[:task.MaxMatches]
	}
	if err := s.tasks.SetTotal(task.ID, len(matches)); err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	acc := newSeasonAccumulator(task.CompetitionID, task.SeasonID, task.GridSize)
	processed, failed := 0, 0
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := s.importMatch(ctx, m, acc); err != nil {
			log.Printf("[ImportService] Task %d: match %d failed: %v", task.ID, m.MatchID, err)
			failed++
		}
		processed++

		progress := processed * 100 / len(matches)
		if err := s.tasks.UpdateProgress(task.ID, processed, failed, progress); err != nil {
			log.Printf("[ImportService] Failed to update progress: %v", err)
		}
	}
	if failed == len(matches) {
		return 0, fmt.Errorf("all %d matches failed", failed)
	}

	players := acc.Players()
	if err := s.players.UpsertMany(players); err != nil {
		return 0, err
	}
	for _, rec := range acc.Records() {
		if err := s.heatmaps.ReplaceRecord(rec); err != nil {
			return 0, err
		}
	}
	return len(players), nil
}

func (s *ImportService) importMatch(ctx context.Context, m statsbomb.Match, acc *seasonAccumulator) error {
	lineups, err := s.provider.Lineups(ctx, m.MatchID)
	if err != nil {
		return fmt.Errorf("failed to fetch lineups: %w", err)
	}
	events, err := s.provider.Events(ctx, m.MatchID)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	acc.AddLineups(lineups)
	acc.AddEvents(events)
	return s.matches.SetEventsCount(m.MatchID, len(events))
}

// seasonAccumulator merges players and located events across matches
type seasonAccumulator struct {
	competitionID int64
	seasonID      int64
	gridSize      int

	players map[int64]models.Player
	order   []int64
	binners map[int64]*heatmap.Binner
}

func newSeasonAccumulator(competitionID, seasonID int64, gridSize int) *seasonAccumulator {
	return &seasonAccumulator{
		competitionID: competitionID,
		seasonID:      seasonID,
		gridSize:      gridSize,
		players:       make(map[int64]models.Player),
		binners:       make(map[int64]*heatmap.Binner),
	}
}

// AddLineups records lineup players; known jersey numbers and positions
// survive later lineups that omit them
func (a *seasonAccumulator) AddLineups(lineups []statsbomb.TeamLineup) {
	for _, p := range statsbomb.LineupPlayers(lineups, a.competitionID, a.seasonID) {
		prev, ok := a.players[p.ID]
		if !ok {
			a.order = append(a.order, p.ID)
		} else {
			if p.JerseyNumber == nil {
				p.JerseyNumber = prev.JerseyNumber
			}
			if p.Position == "" {
				p.Position = prev.Position
			}
		}
		a.players[p.ID] = p
	}
}

// AddEvents bins every located event into its player's grid
func (a *seasonAccumulator) AddEvents(events []statsbomb.Event) {
	for _, e := range events {
		if e.Player == nil {
			continue
		}
		x, y, ok := e.Location2D()
		if !ok {
			continue
		}

		if _, known := a.players[e.Player.ID]; !known {
			a.order = append(a.order, e.Player.ID)
			a.players[e.Player.ID] = models.Player{
				ID:            e.Player.ID,
				CompetitionID: a.competitionID,
				SeasonID:      a.seasonID,
				Name:          e.Player.Name,
				Team:          e.Team.Name,
			}
		}

		b, ok := a.binners[e.Player.ID]
		if !ok {
			b = heatmap.NewBinner(a.gridSize)
			a.binners[e.Player.ID] = b
		}
		b.Add(r2.Point{X: x, Y: y})
	}
}

// Players returns accumulated players in first-seen order
func (a *seasonAccumulator) Players() []models.Player {
	out := make([]models.Player, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.players[id])
	}
	return out
}

// Records returns one heat-map record per player with located events
func (a *seasonAccumulator) Records() []models.HeatMapRecord {
	var out []models.HeatMapRecord
	for _, id := range a.order {
		b, ok := a.binners[id]
		if !ok {
			continue
		}
		out = append(out, models.HeatMapRecord{
			Player:        a.players[id],
			CompetitionID: a.competitionID,
			SeasonID:      a.seasonID,
			TotalEvents:   b.Total(),
			GridSize:      b.GridSize(),
			Zones:         b.Zones(),
		})
	}
	return out
}
