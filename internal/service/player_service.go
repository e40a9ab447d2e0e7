package service

import (
	"context"

	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/repository"
)

// PlayerService handles business logic for players
type PlayerService struct {
	repo *repository.PlayerRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(repo *repository.PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// List returns the players of a competition season
func (s *PlayerService) List(ctx context.Context, competitionID, seasonID int64) ([]models.Player, error) {
	return s.repo.List(ctx, competitionID, seasonID)
}
