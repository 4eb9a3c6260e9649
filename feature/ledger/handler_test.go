package ledger_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"lab-inventory/feature/ledger"
	"lab-inventory/feature/ledger/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleListTransactions(t *testing.T) {
	db := newTestDB(t)
	svc := ledger.NewService(db, zap.NewNop(), 1000)
	h := ledger.NewHandler(svc, zap.NewNop())

	app := fiber.New()
	h.RegisterRoutes(app)

	ctx := context.Background()
	_, err := svc.Store().Append(ctx, "alice", "RES001", "Resistor", models.ActionCheckout)
	require.NoError(t, err)
	_, err = svc.Store().Append(ctx, "bob", "CAP001", "Capacitor", models.ActionCheckin)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/transactions", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "CAP001", entries[0]["item_code"])
	assert.Equal(t, "checkin", entries[0]["action"])

	// limit is honored per request.
	req = httptest.NewRequest("GET", "/transactions?limit=1", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	entries = nil
	require.NoError(t, json.Unmarshal(raw, &entries))
	assert.Len(t, entries, 1)
}
