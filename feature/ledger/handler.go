package ledger

import (
	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the transaction ledger.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/transactions", h.HandleList)
}

// HandleList returns the most recent transactions.
// @Summary List Transactions
// @Description Most recent checkout/check-in transactions, newest first.
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum entries (default and cap 1000)"
// @Success 200 {array} models.Transaction
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /transactions [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	limit := c.QueryInt("limit", 0)

	entries, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		l.Error("Transaction listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching transactions"})
	}

	return c.JSON(entries)
}
