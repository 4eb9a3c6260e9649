package ledger

import (
	"context"
	"fmt"
	"time"

	"lab-inventory/feature/ledger/models"

	"gorm.io/gorm"
)

// Store is the append-only transaction ledger. It exposes no update or
// delete operation.
type Store struct {
	db *gorm.DB
}

// NewStore creates a ledger store bound to the given connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx returns a store bound to the given transaction handle, so a ledger
// append can commit atomically with the quantity mutation it records.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{db: tx}
}

// Append writes one ledger entry. The id and timestamp are assigned here and
// never modified afterwards.
func (s *Store) Append(ctx context.Context, username, itemCode, itemName, action string) (*models.Transaction, error) {
	entry := &models.Transaction{
		Username: username,
		ItemCode: itemCode,
		ItemName: itemName,
		Action:   action,
		ScanTime: time.Now(),
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to append transaction for %s: %w", itemCode, err)
	}
	return entry, nil
}

// List returns the most recent entries, newest first. The id is used as a
// tiebreaker so entries created in the same instant keep a stable order.
func (s *Store) List(ctx context.Context, limit int) ([]models.Transaction, error) {
	var out []models.Transaction
	err := s.db.WithContext(ctx).
		Order("scan_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return out, nil
}
