package matches

import (
	"context"
	"errors"
	"fmt"

	"match-sync/feature/sync/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a match does not exist.
var ErrNotFound = errors.New("match not found")

// Service provides read access to matches with their teams.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new matches service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// List returns matches with both teams preloaded, ordered by kickoff,
// optionally filtered by stage.
func (s *Service) List(ctx context.Context, stage string) ([]models.Match, error) {
	query := s.db.WithContext(ctx).
		Preload("HomeTeam").
		Preload("AwayTeam").
		Order("match_date ASC")

	if stage != "" && stage != "all" {
		query = query.Where("stage = ?", stage)
	}

	var result []models.Match
	if err := query.Find(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return result, nil
}

// Get returns a single match with its teams.
func (s *Service) Get(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	err := s.db.WithContext(ctx).
		Preload("HomeTeam").
		Preload("AwayTeam").
		First(&match, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match %s: %w", id, err)
	}
	return &match, nil
}
