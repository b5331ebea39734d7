package synopses

import (
	"time"

	"github.com/NovaUNL/Supernova-sub001/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Synopses feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cacheTTL time.Duration) *Feature {
	svc := NewService(client, bucket, logger, db, cacheTTL)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "synopses"
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
