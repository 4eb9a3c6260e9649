package ledger_test

import (
	"context"
	"testing"

	"lab-inventory/core/database"
	"lab-inventory/feature/ledger"
	"lab-inventory/feature/ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Transaction{}))

	return db
}

func TestAppendAssignsTimestamp(t *testing.T) {
	store := ledger.NewStore(newTestDB(t))

	entry, err := store.Append(context.Background(), "alice", "RES001", "Resistor", models.ActionCheckout)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.ScanTime.IsZero())
	assert.Equal(t, "checkout", entry.Action)
}

func TestListReturnsNewestFirst(t *testing.T) {
	store := ledger.NewStore(newTestDB(t))
	ctx := context.Background()

	_, err := store.Append(ctx, "alice", "RES001", "Resistor", models.ActionCheckout)
	require.NoError(t, err)
	_, err = store.Append(ctx, "bob", "CAP001", "Capacitor", models.ActionCheckout)
	require.NoError(t, err)
	_, err = store.Append(ctx, "alice", "RES001", "Resistor", models.ActionCheckin)
	require.NoError(t, err)

	entries, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Entries written in the same instant fall back to id order.
	assert.Equal(t, "checkin", entries[0].Action)
	assert.Equal(t, "CAP001", entries[1].ItemCode)
	assert.Equal(t, "checkout", entries[2].Action)
}

func TestListHonorsLimit(t *testing.T) {
	store := ledger.NewStore(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Append(ctx, "alice", "RES001", "Resistor", models.ActionCheckout)
		require.NoError(t, err)
	}

	entries, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestServiceRecentCapsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := ledger.NewService(db, zap.NewNop(), 3)
	ctx := context.Background()

	store := svc.Store()
	for i := 0; i < 5; i++ {
		_, err := store.Append(ctx, "alice", "RES001", "Resistor", models.ActionCheckout)
		require.NoError(t, err)
	}

	// Over-the-cap and non-positive limits both collapse to the cap.
	entries, err := svc.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = svc.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
