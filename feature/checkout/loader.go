package checkout

import (
	"lab-inventory/feature/catalog"
	"lab-inventory/feature/ledger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the checkout feature on top of the catalog and ledger
// stores.
func NewFeature(db *gorm.DB, catalogStore *catalog.Store, ledgerStore *ledger.Store, logger *zap.Logger) *Feature {
	svc := NewService(db, catalogStore, ledgerStore, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "checkout"
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
