package checkout

import (
	"context"

	"lab-inventory/core/errs"
	"lab-inventory/feature/catalog"
	catalogmodels "lab-inventory/feature/catalog/models"
	"lab-inventory/feature/ledger"
	ledgermodels "lab-inventory/feature/ledger/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service is the inventory engine. It enforces the checkout/check-in
// protocol as one logical transaction spanning the catalog store and the
// ledger: the quantity mutation and the ledger append commit or roll back
// together.
type Service struct {
	db      *gorm.DB
	catalog *catalog.Store
	ledger  *ledger.Store
	logger  *zap.Logger
}

// NewService creates a new inventory engine.
func NewService(db *gorm.DB, catalogStore *catalog.Store, ledgerStore *ledger.Store, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		catalog: catalogStore,
		ledger:  ledgerStore,
		logger:  logger,
	}
}

// Checkout removes quantity units of the material from availability and
// appends a checkout ledger entry. Fails with ErrInvalidQuantity,
// ErrMaterialNotFound or ErrInsufficientStock; on any failure no partial
// effect is observable.
func (s *Service) Checkout(ctx context.Context, username, materialCode string, quantity int) (*catalogmodels.Material, error) {
	return s.transition(ctx, username, materialCode, quantity, ledgermodels.ActionCheckout)
}

// Checkin returns quantity units of the material to availability, clamped at
// the material's total quantity, and appends a check-in ledger entry.
// Excess check-in is accepted up to the cap rather than rejected.
func (s *Service) Checkin(ctx context.Context, username, materialCode string, quantity int) (*catalogmodels.Material, error) {
	return s.transition(ctx, username, materialCode, quantity, ledgermodels.ActionCheckin)
}

func (s *Service) transition(ctx context.Context, username, materialCode string, quantity int, action string) (*catalogmodels.Material, error) {
	if quantity <= 0 {
		return nil, errs.ErrInvalidQuantity
	}

	delta := quantity
	if action == ledgermodels.ActionCheckout {
		delta = -quantity
	}

	var out *catalogmodels.Material
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := s.catalog.WithTx(tx).AdjustAvailable(ctx, materialCode, delta)
		if err != nil {
			return err
		}

		if _, err := s.ledger.WithTx(tx).Append(ctx, username, m.Code, m.Name, action); err != nil {
			return err
		}

		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory transition applied",
		zap.String("action", action),
		zap.String("material_code", out.Code),
		zap.String("username", username),
		zap.Int("quantity", quantity),
		zap.Int("available", out.AvailableQty),
	)

	return out, nil
}
