package catalog

import (
	"strconv"

	"lab-inventory/core/errs"
	"lab-inventory/core/logger"
	"lab-inventory/core/utils"
	"lab-inventory/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the materials catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/materials")
	group.Get("/", h.HandleList)
	// Must be registered before the identifier route.
	group.Get("/search", h.HandleSearch)
	group.Get("/:identifier", h.HandleGet)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// materialRequest is the admin update payload. Legacy clients used
// item_code/item_name and available_quantity; the aliases are normalized
// here at the boundary so core logic only ever sees canonical names.
type materialRequest struct {
	Code            string `json:"material_code"`
	ItemCode        string `json:"item_code"`
	Name            string `json:"material_name"`
	ItemName        string `json:"item_name"`
	MaterialType    string `json:"material_type"`
	SupplierAddress string `json:"supplier_address"`
	BillNo          string `json:"bill_no_invoice"`
	OpeningBalance  any    `json:"opening_balance"`
	QtyReceived     any    `json:"quantity_received"`
	QtyIssued       any    `json:"quantity_issued"`
	TotalQty        any    `json:"total_qty"`
	AvailableQty    any    `json:"available_qty"`
	AvailableQtyAlt any    `json:"available_quantity"`
}

// canonical maps the request onto the canonical material shape.
func (r *materialRequest) canonical() *models.Material {
	code := utils.ToString(r.Code)
	if code == "" {
		code = utils.ToString(r.ItemCode)
	}
	name := utils.ToString(r.Name)
	if name == "" {
		name = utils.ToString(r.ItemName)
	}
	available := r.AvailableQty
	if available == nil {
		available = r.AvailableQtyAlt
	}

	return &models.Material{
		Code:            code,
		Name:            name,
		MaterialType:    utils.ToString(r.MaterialType),
		SupplierAddress: utils.ToString(r.SupplierAddress),
		BillNo:          utils.ToString(r.BillNo),
		OpeningBalance:  utils.ToInt(r.OpeningBalance),
		QtyReceived:     utils.ToInt(r.QtyReceived),
		QtyIssued:       utils.ToInt(r.QtyIssued),
		TotalQty:        utils.ToInt(r.TotalQty),
		AvailableQty:    utils.ToInt(available),
	}
}

// HandleList returns all materials.
// @Summary List Materials
// @Description List every material in the catalog.
// @Tags materials
// @Produce json
// @Success 200 {array} models.Material
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /materials [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	materials, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Material listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching materials"})
	}

	return c.JSON(materials)
}

// HandleSearch searches materials by name or code.
// @Summary Search Materials
// @Description Search materials by name or code substring.
// @Tags materials
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {array} models.Material
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /materials/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	q := c.Query("q")
	limit := c.QueryInt("limit", 10)

	materials, err := h.service.Search(c.Context(), q, limit)
	if err != nil {
		l.Error("Material search failed", zap.Error(err), zap.String("query", q))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error searching materials"})
	}

	return c.JSON(materials)
}

// HandleGet returns a single material by code or numeric id.
// @Summary Get Material
// @Description Get a material by its code, falling back to numeric id.
// @Tags materials
// @Produce json
// @Param identifier path string true "Material code or id"
// @Success 200 {object} models.Material
// @Failure 404 {object} map[string]string "Not Found"
// @Router /materials/{identifier} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	identifier := c.Params("identifier")

	material, err := h.service.Get(c.Context(), identifier)
	if err != nil {
		l.Warn("Material lookup failed", zap.Error(err), zap.String("identifier", identifier))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(material)
}

// HandleUpdate replaces a material's fields (admin edit).
// @Summary Update Material
// @Description Admin-style full replace of a material's descriptive and quantity fields.
// @Tags materials
// @Accept json
// @Produce json
// @Param id path int true "Material id"
// @Param material body materialRequest true "Material fields"
// @Success 200 {object} models.Material
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /materials/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid material id"})
	}

	var req materialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	fields := req.canonical()
	if fields.Code == "" || fields.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Material Code and Name are required"})
	}

	material, err := h.service.Update(c.Context(), uint(id), fields)
	if err != nil {
		l.Error("Material update failed", zap.Error(err), zap.Uint64("id", id))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	l.Info("Material updated", zap.String("code", material.Code), zap.Uint("id", material.ID))
	return c.JSON(fiber.Map{
		"message":  "Material updated successfully",
		"material": material,
	})
}

// HandleDelete removes a material.
// @Summary Delete Material
// @Description Delete a material by id.
// @Tags materials
// @Produce json
// @Param id path int true "Material id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /materials/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid material id"})
	}

	code, err := h.service.Delete(c.Context(), uint(id))
	if err != nil {
		l.Error("Material delete failed", zap.Error(err), zap.Uint64("id", id))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	l.Info("Material deleted", zap.String("code", code), zap.Uint64("id", id))
	return c.JSON(fiber.Map{
		"message":       "Material deleted successfully",
		"material_code": code,
	})
}
