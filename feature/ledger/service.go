package ledger

import (
	"context"

	"lab-inventory/feature/ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service exposes ledger queries. Appends happen through the Store inside
// the checkout engine's transaction; this service only reads.
type Service struct {
	store    *Store
	logger   *zap.Logger
	maxLimit int
}

// NewService creates a new ledger service. maxLimit caps how many entries a
// single query may return.
func NewService(db *gorm.DB, logger *zap.Logger, maxLimit int) *Service {
	if maxLimit <= 0 {
		maxLimit = 1000
	}
	return &Service{store: NewStore(db), logger: logger, maxLimit: maxLimit}
}

// Store returns the underlying ledger store for transactional composition.
func (s *Service) Store() *Store {
	return s.store
}

// Recent returns the most recent ledger entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > s.maxLimit {
		limit = s.maxLimit
	}
	return s.store.List(ctx, limit)
}
