package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/statsbomb"
)

// CatalogProvider lists what the open-data source has to offer
type CatalogProvider interface {
	Competitions(ctx context.Context) ([]statsbomb.Competition, error)
	Matches(ctx context.Context, competitionID, seasonID int64) ([]statsbomb.Match, error)
}

// CompetitionService handles business logic for competitions and seasons.
// When storage is empty it reads through to the provider and keeps the result.
type CompetitionService struct {
	repo     *repository.CompetitionRepository
	provider CatalogProvider
}

// NewCompetitionService creates a new competition service. provider may be nil,
// in which case only stored rows are served.
func NewCompetitionService(repo *repository.CompetitionRepository, provider CatalogProvider) *CompetitionService {
	return &CompetitionService{repo: repo, provider: provider}
}

// ListFlat returns one row per competition season
func (s *CompetitionService) ListFlat(ctx context.Context) ([]models.FlatCompetition, error) {
	rows, err := s.repo.ListFlat()
	if err != nil || len(rows) > 0 || s.provider == nil {
		return rows, err
	}
	if err := s.sync(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListFlat()
}

// ListGrouped returns competitions with their seasons nested
func (s *CompetitionService) ListGrouped(ctx context.Context) ([]models.Competition, error) {
	rows, err := s.ListFlat(ctx)
	if err != nil {
		return nil, err
	}
	return models.GroupCompetitions(rows), nil
}

// Seasons returns the seasons of one competition
func (s *CompetitionService) Seasons(ctx context.Context, competitionID int64) ([]models.Season, error) {
	seasons, err := s.repo.Seasons(competitionID)
	if !errors.Is(err, repository.ErrNotFound) || s.provider == nil {
		return seasons, err
	}
	if err := s.sync(ctx); err != nil {
		return nil, err
	}
	return s.repo.Seasons(competitionID)
}

// sync copies the provider's competition list into storage
func (s *CompetitionService) sync(ctx context.Context) error {
	comps, err := s.provider.Competitions(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch competitions: %w", err)
	}
	if err := s.repo.UpsertMany(statsbomb.ToFlatCompetitions(comps)); err != nil {
		return err
	}
	log.Printf("[CompetitionService] Stored %d competition seasons from provider", len(comps))
	return nil
}
