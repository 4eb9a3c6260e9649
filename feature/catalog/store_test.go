package catalog_test

import (
	"context"
	"testing"

	"lab-inventory/core/database"
	"lab-inventory/core/errs"
	"lab-inventory/feature/catalog"
	"lab-inventory/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Material{}))

	return catalog.NewStore(db)
}

func seedMaterial(t *testing.T, store *catalog.Store, code string, total, available int) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), &models.Material{
		Code:         code,
		Name:         "Material " + code,
		TotalQty:     total,
		AvailableQty: available,
	}))
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	err := store.Create(ctx, &models.Material{Code: "RES001", Name: "Duplicate"})
	assert.ErrorIs(t, err, errs.ErrDuplicateCode)
}

func TestFindByIdentifier(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	byCode, err := store.FindByIdentifier(ctx, "RES001")
	require.NoError(t, err)
	assert.Equal(t, "RES001", byCode.Code)

	// Numeric fallback resolves by surrogate id.
	byID, err := store.FindByIdentifier(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, byCode.ID, byID.ID)

	_, err = store.FindByIdentifier(ctx, "NOPE")
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)
}

func TestAdjustAvailableDecrement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	m, err := store.AdjustAvailable(ctx, "RES001", -10)
	require.NoError(t, err)
	assert.Equal(t, 75, m.AvailableQty)
}

func TestAdjustAvailableInsufficientStockLeavesQuantityUnchanged(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 75)

	_, err := store.AdjustAvailable(ctx, "RES001", -80)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "75")

	m, err := store.Find(ctx, "RES001")
	require.NoError(t, err)
	assert.Equal(t, 75, m.AvailableQty)
}

func TestAdjustAvailableUnknownCode(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AdjustAvailable(context.Background(), "NOPE", -1)
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)

	_, err = store.AdjustAvailable(context.Background(), "NOPE", 1)
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)
}

func TestAdjustAvailableIncrementClampsAtTotal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 95)

	m, err := store.AdjustAvailable(ctx, "RES001", 10)
	require.NoError(t, err)
	assert.Equal(t, 100, m.AvailableQty)

	// Check-in at the cap stays at the cap.
	m, err = store.AdjustAvailable(ctx, "RES001", 5)
	require.NoError(t, err)
	assert.Equal(t, 100, m.AvailableQty)
}

func TestOverwriteEnforcesQuantityInvariant(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	_, err := store.Overwrite(ctx, 1, &models.Material{
		Code:         "RES001",
		Name:         "Material RES001",
		TotalQty:     50,
		AvailableQty: 60,
	})
	assert.ErrorIs(t, err, errs.ErrValidationFailed)
}

func TestOverwriteReplacesFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	updated, err := store.Overwrite(ctx, 1, &models.Material{
		Code:         "RES001",
		Name:         "Precision Resistor",
		MaterialType: "passive",
		TotalQty:     120,
		AvailableQty: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, "Precision Resistor", updated.Name)
	assert.Equal(t, "passive", updated.MaterialType)
	assert.Equal(t, 120, updated.TotalQty)
	assert.Equal(t, 90, updated.AvailableQty)
}

func TestDeleteReturnsCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)

	code, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "RES001", code)

	_, err = store.Find(ctx, "RES001")
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)

	_, err = store.Delete(ctx, 1)
	assert.ErrorIs(t, err, errs.ErrMaterialNotFound)
}

func TestSearchMatchesNameAndCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seedMaterial(t, store, "RES001", 100, 85)
	seedMaterial(t, store, "CAP001", 50, 50)

	byCode, err := store.Search(ctx, "RES", 10)
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "RES001", byCode[0].Code)

	byName, err := store.Search(ctx, "Material", 10)
	require.NoError(t, err)
	assert.Len(t, byName, 2)
}
