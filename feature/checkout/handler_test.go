package checkout_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"lab-inventory/feature/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *fixture) {
	t.Helper()

	f := newFixture(t)
	h := checkout.NewHandler(f.service, zap.NewNop())

	app := fiber.New()
	h.RegisterRoutes(app)
	return app, f
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestHandleCheckout(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 85)

	status, body := postJSON(t, app, "/checkout", map[string]any{
		"username":      "alice",
		"material_code": "RES001",
		"quantity":      10,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "RES001", body["material_code"])
	assert.EqualValues(t, 75, body["available_qty"])
}

func TestHandleCheckoutDefaultsQuantityToOne(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 85)

	status, body := postJSON(t, app, "/checkout", map[string]any{
		"username":      "alice",
		"material_code": "RES001",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 84, body["available_qty"])
}

func TestHandleCheckoutAcceptsItemCodeAlias(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 85)

	status, body := postJSON(t, app, "/checkout", map[string]any{
		"username":  "alice",
		"item_code": "RES001",
		"quantity":  "5",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 80, body["available_qty"])
}

func TestHandleCheckoutUnknownMaterial(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := postJSON(t, app, "/checkout", map[string]any{
		"username":      "alice",
		"material_code": "NOPE",
		"quantity":      1,
	})

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body["message"], "not found")
}

func TestHandleCheckoutInsufficientStock(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 5)

	status, body := postJSON(t, app, "/checkout", map[string]any{
		"username":      "alice",
		"material_code": "RES001",
		"quantity":      10,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "insufficient stock")
	assert.Equal(t, 5, f.available(t, "RES001"))
}

func TestHandleCheckin(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 75)

	status, body := postJSON(t, app, "/checkin", map[string]any{
		"username":      "alice",
		"material_code": "RES001",
		"quantity":      10,
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 85, body["available_qty"])

	entries := f.ledgerEntries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "checkin", entries[0].Action)
}

func TestHandleCheckinInvalidQuantity(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 75)

	status, body := postJSON(t, app, "/checkin", map[string]any{
		"username":      "alice",
		"material_code": "RES001",
		"quantity":      -3,
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "positive integer")
	assert.Equal(t, 75, f.available(t, "RES001"))
}

func TestHandlersShareLedger(t *testing.T) {
	app, f := newTestApp(t)
	f.seed(t, "RES001", 100, 85)

	status, _ := postJSON(t, app, "/checkout", map[string]any{
		"username": "alice", "material_code": "RES001", "quantity": 10,
	})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = postJSON(t, app, "/checkin", map[string]any{
		"username": "alice", "material_code": "RES001", "quantity": 10,
	})
	require.Equal(t, fiber.StatusOK, status)

	entries, err := f.ledger.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
