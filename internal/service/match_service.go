package service

import (
	"context"
	"fmt"
	"log"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/statsbomb"
)

const maxMatchLimit = 500

// MatchService handles business logic for matches
type MatchService struct {
	repo     *repository.MatchRepository
	provider CatalogProvider
}

// NewMatchService creates a new match service. A season with no stored
// matches is fetched from provider when one is given.
func NewMatchService(repo *repository.MatchRepository, provider CatalogProvider) *MatchService {
	return &MatchService{repo: repo, provider: provider}
}

// List retrieves matches of a competition season
func (s *MatchService) List(ctx context.Context, filter models.MatchFilter) ([]models.Match, error) {
	if filter.CompetitionID <= 0 || filter.SeasonID <= 0 {
		return nil, fmt.Errorf("%w: competition_id and season_id are required", ErrInvalidInput)
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if filter.Limit > maxMatchLimit {
		filter.Limit = maxMatchLimit
	}

	if s.provider != nil {
		stored, err := s.repo.CountForSeason(filter.CompetitionID, filter.SeasonID)
		if err != nil {
			return nil, err
		}
		if stored == 0 {
			if err := s.sync(ctx, filter.CompetitionID, filter.SeasonID); err != nil {
				return nil, err
			}
		}
	}
	return s.repo.List(filter)
}

// Get retrieves a single match with venue, referee and event count
func (s *MatchService) Get(id int64) (*models.MatchDetail, error) {
	return s.repo.GetByID(id)
}

func (s *MatchService) sync(ctx context.Context, competitionID, seasonID int64) error {
	matches, err := s.provider.Matches(ctx, competitionID, seasonID)
	if err != nil {
		return fmt.Errorf("failed to fetch matches: %w", err)
	}
	if err := s.repo.UpsertMany(statsbomb.ToMatchDetails(matches, competitionID, seasonID)); err != nil {
		return err
	}
	log.Printf("[MatchService] Stored %d matches for competition %d season %d", len(matches), competitionID, seasonID)
	return nil
}
