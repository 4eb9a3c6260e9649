package checkout

import (
	"lab-inventory/core/errs"
	"lab-inventory/core/logger"
	"lab-inventory/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for checkout/check-in.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the checkout routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/checkout", h.HandleCheckout)
	app.Post("/checkin", h.HandleCheckin)
}

// transitionRequest is the scan payload. Quantity defaults to 1 when the
// client omits it (single-unit scans). item_code is a legacy alias.
type transitionRequest struct {
	Username     string `json:"username"`
	MaterialCode string `json:"material_code"`
	ItemCode     string `json:"item_code"`
	Quantity     any    `json:"quantity"`
}

func (r *transitionRequest) code() string {
	code := utils.ToString(r.MaterialCode)
	if code == "" {
		code = utils.ToString(r.ItemCode)
	}
	return code
}

func (r *transitionRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return utils.ToInt(r.Quantity)
}

// HandleCheckout decrements availability and records a checkout transaction.
// @Summary Checkout Material
// @Description Check out units of a material, decrementing its available quantity.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body transitionRequest true "Checkout request"
// @Success 200 {object} map[string]interface{} "Checkout result"
// @Failure 400 {object} map[string]string "Invalid quantity or insufficient stock"
// @Failure 404 {object} map[string]string "Material not found"
// @Router /checkout [post]
func (h *Handler) HandleCheckout(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	material, err := h.service.Checkout(c.Context(), req.Username, req.code(), req.quantity())
	if err != nil {
		l.Warn("Checkout failed", zap.Error(err), zap.String("material_code", req.code()))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":       "Checkout successful",
		"material_code": material.Code,
		"available_qty": material.AvailableQty,
	})
}

// HandleCheckin increments availability and records a check-in transaction.
// @Summary Check In Material
// @Description Check in units of a material, incrementing its available quantity up to the stocked total.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body transitionRequest true "Check-in request"
// @Success 200 {object} map[string]interface{} "Check-in result"
// @Failure 400 {object} map[string]string "Invalid quantity"
// @Failure 404 {object} map[string]string "Material not found"
// @Router /checkin [post]
func (h *Handler) HandleCheckin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req transitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	material, err := h.service.Checkin(c.Context(), req.Username, req.code(), req.quantity())
	if err != nil {
		l.Warn("Check-in failed", zap.Error(err), zap.String("material_code", req.code()))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":       "Check-in successful",
		"material_code": material.Code,
		"available_qty": material.AvailableQty,
	})
}
