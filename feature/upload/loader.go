package upload

import (
	"lab-inventory/core/storage"
	"lab-inventory/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the upload feature. archive may be nil when report
// archiving is disabled.
func NewFeature(db *gorm.DB, catalogStore *catalog.Store, archive storage.Client, archiveCfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(db, catalogStore, archive, archiveCfg, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service exposes the upload service to the import command.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "upload"
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
