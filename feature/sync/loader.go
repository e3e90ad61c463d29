package sync

import (
	"match-sync/core/storage"
	"match-sync/feature/sync/feed"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the sync feature. archive may be nil when snapshot
// archival is disabled.
func NewFeature(feedClient FeedClient, db *gorm.DB, archive storage.Client, bucket string, cfg feed.Config, logger *zap.Logger) *Feature {
	svc := NewService(feedClient, NewStore(db), archive, bucket, cfg, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service exposes the sync service for CLI invocations.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "sync"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
