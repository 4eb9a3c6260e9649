package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"lab-inventory/core/errs"
	"lab-inventory/feature/catalog/models"

	"gorm.io/gorm"
)

// Store is the single authority over the materials table. All quantity
// mutations go through AdjustAvailable or Overwrite; nothing else touches
// available_qty.
type Store struct {
	db *gorm.DB
}

// NewStore creates a catalog store bound to the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a store bound to the given transaction handle, so callers
// can compose catalog mutations with other writes in one transaction.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// Find looks up a material by its business code.
func (s *Store) Find(ctx context.Context, code string) (*models.Material, error) {
	var m models.Material
	err := s.db.WithContext(ctx).Where("material_code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrMaterialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find material %s: %w", code, err)
	}
	return &m, nil
}

// FindByID looks up a material by its surrogate id.
func (s *Store) FindByID(ctx context.Context, id uint) (*models.Material, error) {
	var m models.Material
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrMaterialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find material id %d: %w", id, err)
	}
	return &m, nil
}

// FindByIdentifier resolves a material by code first, falling back to a
// numeric surrogate id. Scanners send whatever the QR label carries.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*models.Material, error) {
	m, err := s.Find(ctx, identifier)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, errs.ErrMaterialNotFound) {
		return nil, err
	}

	id, convErr := strconv.ParseUint(identifier, 10, 32)
	if convErr != nil {
		return nil, errs.ErrMaterialNotFound
	}
	return s.FindByID(ctx, uint(id))
}

// List returns all materials ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Material, error) {
	var out []models.Material
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return out, nil
}

// Search finds materials whose name or code contains the query string.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]models.Material, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + query + "%"

	var out []models.Material
	err := s.db.WithContext(ctx).
		Where("material_name LIKE ? OR material_code LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search materials: %w", err)
	}
	return out, nil
}

// Create inserts a new material. The code must not already exist.
func (s *Store) Create(ctx context.Context, m *models.Material) error {
	if _, err := s.Find(ctx, m.Code); err == nil {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateCode, m.Code)
	} else if !errors.Is(err, errs.ErrMaterialNotFound) {
		return err
	}

	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create material %s: %w", m.Code, err)
	}
	return nil
}

// AdjustAvailable atomically applies delta to available_qty.
//
// Negative deltas use a conditional UPDATE (available_qty >= need) so the
// check and the decrement are one statement; concurrent checkouts can never
// drive the quantity negative. Positive deltas are clamped at total_qty in
// SQL, so a check-in can never push availability past the stocked total.
func (s *Store) AdjustAvailable(ctx context.Context, code string, delta int) (*models.Material, error) {
	if delta < 0 {
		need := -delta
		res := s.db.WithContext(ctx).Model(&models.Material{}).
			Where("material_code = ? AND available_qty >= ?", code, need).
			Update("available_qty", gorm.Expr("available_qty - ?", need))
		if res.Error != nil {
			return nil, fmt.Errorf("failed to decrement stock for %s: %w", code, res.Error)
		}
		if res.RowsAffected == 0 {
			// Row missing or short on stock; re-read to tell which.
			m, err := s.Find(ctx, code)
			if err != nil {
				return nil, err
			}
			return nil, errs.Insufficient(m.AvailableQty)
		}
	} else {
		if _, err := s.Find(ctx, code); err != nil {
			return nil, err
		}
		res := s.db.WithContext(ctx).Model(&models.Material{}).
			Where("material_code = ?", code).
			Update("available_qty", gorm.Expr(
				"CASE WHEN available_qty + ? > total_qty THEN total_qty ELSE available_qty + ? END",
				delta, delta))
		if res.Error != nil {
			return nil, fmt.Errorf("failed to increment stock for %s: %w", code, res.Error)
		}
	}

	return s.Find(ctx, code)
}

// Overwrite replaces a material's descriptive and quantity fields in one
// admin-style update. It does not go through AdjustAvailable; the caller is
// trusted to supply consistent quantities (validated against the invariant).
func (s *Store) Overwrite(ctx context.Context, id uint, fields *models.Material) (*models.Material, error) {
	if fields.AvailableQty > fields.TotalQty {
		return nil, fmt.Errorf("%w: available quantity (%d) exceeds total quantity (%d)",
			errs.ErrValidationFailed, fields.AvailableQty, fields.TotalQty)
	}

	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"material_code":     fields.Code,
		"material_name":     fields.Name,
		"material_type":     fields.MaterialType,
		"supplier_address":  fields.SupplierAddress,
		"bill_no_invoice":   fields.BillNo,
		"opening_balance":   fields.OpeningBalance,
		"quantity_received": fields.QtyReceived,
		"quantity_issued":   fields.QtyIssued,
		"total_qty":         fields.TotalQty,
		"available_qty":     fields.AvailableQty,
	}

	res := s.db.WithContext(ctx).Model(&models.Material{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update material id %d: %w", id, res.Error)
	}

	return s.FindByID(ctx, id)
}

// OverwriteByCode replaces the name and quantity fields of an existing
// material, keyed by code. Used by bulk re-imports.
func (s *Store) OverwriteByCode(ctx context.Context, code, name string, totalQty, availableQty int) error {
	// Existence is checked separately: MySQL reports zero affected rows for
	// value-identical updates, so RowsAffected cannot distinguish "missing"
	// from "idempotent re-import".
	if _, err := s.Find(ctx, code); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Model(&models.Material{}).
		Where("material_code = ?", code).
		Updates(map[string]any{
			"material_name": name,
			"total_qty":     totalQty,
			"available_qty": availableQty,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update material %s: %w", code, err)
	}
	return nil
}

// Delete removes a material by id and returns its code.
func (s *Store) Delete(ctx context.Context, id uint) (string, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.db.WithContext(ctx).Delete(&models.Material{}, id).Error; err != nil {
		return "", fmt.Errorf("failed to delete material id %d: %w", id, err)
	}
	return m.Code, nil
}
