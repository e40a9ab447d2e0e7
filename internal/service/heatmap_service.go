package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/jengzang/futbol-backend-go/internal/heatmap"
	"github.com/jengzang/futbol-backend-go/internal/models"
	"github.com/jengzang/futbol-backend-go/internal/repository"
	"github.com/jengzang/futbol-backend-go/internal/selection"
)

const maxGridSize = 40

// RecordSource loads stored heat-map records
type RecordSource interface {
	GetRecord(ctx context.Context, competitionID, seasonID, playerID int64) (*models.HeatMapRecord, error)
}

// PlayerSource looks up player metadata
type PlayerSource interface {
	Get(ctx context.Context, competitionID, seasonID, playerID int64) (*models.Player, error)
}

// HeatmapOptions are the service defaults; requests may override them
type HeatmapOptions struct {
	Normalization heatmap.Normalization
	GridSize      int
	Fallback      bool
}

// HeatmapService resolves, normalizes and renders player heat maps
type HeatmapService struct {
	records RecordSource
	players PlayerSource
	opts    HeatmapOptions

	// newSource returns the random source for one synthetic record
	newSource func() heatmap.Float64Source
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(records RecordSource, players PlayerSource, opts HeatmapOptions) *HeatmapService {
	if opts.GridSize <= 0 {
		opts.GridSize = heatmap.DefaultGridSize
	}
	if opts.Normalization.Mode == "" {
		opts.Normalization = heatmap.ByMax()
	}
	return &HeatmapService{
		records: records,
		players: players,
		opts:    opts,
		newSource: func() heatmap.Float64Source {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// SetRandSource replaces the random source used for synthetic records
func (s *HeatmapService) SetRandSource(fn func() heatmap.Float64Source) {
	s.newSource = fn
}

// Build resolves and renders the heat map for one selection.
// A missing or unreadable stored record degrades to a synthetic one unless
// fallback is disabled, in which case the lookup error is returned.
func (s *HeatmapService) Build(ctx context.Context, sel selection.Selection, filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	norm, gridSize, fallback, err := s.resolveOptions(filter)
	if err != nil {
		return nil, err
	}

	resp := &models.HeatmapResponse{
		CompetitionID: sel.CompetitionID,
		SeasonID:      sel.SeasonID,
	}

	rec, err := s.records.GetRecord(ctx, sel.CompetitionID, sel.SeasonID, sel.PlayerID)
	switch {
	case err == nil:
		rec.Zones = norm.Apply(rec.Zones)
		resp.Source = models.HeatmapSourceStored
		resp.Normalization = norm.String()
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case !fallback:
		return nil, err
	default:
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[HeatmapService] Stored record unavailable for player %d, using synthetic: %v", sel.PlayerID, err)
		}
		synth := heatmap.Synthesize(s.lookupPlayer(ctx, sel), gridSize, s.newSource())
		rec = &synth
		resp.Source = models.HeatmapSourceSynthetic
		resp.Normalization = heatmap.Fixed(heatmap.FallbackMaxIntensity).String()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp.View = heatmap.Render(*rec)
	if n := len(resp.View.Rejected); n > 0 {
		log.Printf("[HeatmapService] Rejected %d malformed zones for player %d", n, sel.PlayerID)
	}
	return resp, nil
}

// BuildForTicket builds the heat map for a session ticket. The load is
// cancelled once the ticket's generation is superseded, and a superseded
// result is discarded with selection.ErrStaleSelection.
func (s *HeatmapService) BuildForTicket(ctx context.Context, sess *selection.Session, ticket selection.Ticket, filter models.HeatmapFilter) (*models.HeatmapResponse, error) {
	ctx, cancel, err := sess.Bind(ctx, ticket.Generation)
	if err != nil {
		return nil, err
	}
	defer cancel()

	resp, err := s.Build(ctx, ticket.Selection, filter)
	if !sess.IsCurrent(ticket.Generation) {
		return nil, selection.ErrStaleSelection
	}
	if err != nil {
		return nil, err
	}

	resp.SessionID = ticket.SessionID
	resp.Generation = ticket.Generation
	return resp, nil
}

func (s *HeatmapService) resolveOptions(filter models.HeatmapFilter) (heatmap.Normalization, int, bool, error) {
	norm := s.opts.Normalization
	if filter.Normalize != "" || filter.Scale != 0 {
		mode := filter.Normalize
		if mode == "" {
			mode = heatmap.NormalizeFixed
		}
		n, err := heatmap.ParseNormalization(mode, filter.Scale)
		if err != nil {
			return norm, 0, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		norm = n
	}

	gridSize := s.opts.GridSize
	if filter.GridSize != 0 {
		if filter.GridSize < 1 || filter.GridSize > maxGridSize {
			return norm, 0, false, fmt.Errorf("%w: grid must be between 1 and %d", ErrInvalidInput, maxGridSize)
		}
		gridSize = filter.GridSize
	}

	fallback := s.opts.Fallback
	if filter.Fallback != nil {
		fallback = *filter.Fallback
	}
	return norm, gridSize, fallback, nil
}

func (s *HeatmapService) lookupPlayer(ctx context.Context, sel selection.Selection) models.Player {
	p, err := s.players.Get(ctx, sel.CompetitionID, sel.SeasonID, sel.PlayerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("[HeatmapService] Failed to look up player %d: %v", sel.PlayerID, err)
		}
		return models.Player{ID: sel.PlayerID, CompetitionID: sel.CompetitionID, SeasonID: sel.SeasonID}
	}
	return *p
}
