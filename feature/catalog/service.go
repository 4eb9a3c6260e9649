package catalog

import (
	"context"

	"lab-inventory/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes the catalog operations used by handlers and other features.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{store: NewStore(db), logger: logger}
}

// Store returns the underlying catalog store for features that need to
// compose catalog mutations into their own transactions.
func (s *Service) Store() *Store {
	return s.store
}

// List returns all materials.
func (s *Service) List(ctx context.Context) ([]models.Material, error) {
	return s.store.List(ctx)
}

// Search finds materials matching the query by name or code.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.Material, error) {
	return s.store.Search(ctx, query, limit)
}

// Get resolves a material by code or numeric id.
func (s *Service) Get(ctx context.Context, identifier string) (*models.Material, error) {
	return s.store.FindByIdentifier(ctx, identifier)
}

// Update performs an admin-style full replace of a material's fields.
func (s *Service) Update(ctx context.Context, id uint, fields *models.Material) (*models.Material, error) {
	return s.store.Overwrite(ctx, id, fields)
}

// Delete removes a material and returns its code.
func (s *Service) Delete(ctx context.Context, id uint) (string, error) {
	return s.store.Delete(ctx, id)
}
