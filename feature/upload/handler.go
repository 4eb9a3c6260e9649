package upload

import (
	"errors"

	"lab-inventory/core/errs"
	"lab-inventory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for bulk uploads.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/upload-materials", h.HandleUploadMaterials)
	app.Post("/upload-users", h.HandleUploadUsers)

	reports := app.Group("/upload-reports")
	reports.Get("/", h.HandleListReports)
	reports.Get("/:name", h.HandleGetReport)
	reports.Delete("/:name", h.HandleDeleteReport)
}

// reportStatus maps archive errors onto HTTP statuses. A disabled archive is
// a 404 surface, not a server fault.
func reportStatus(err error) int {
	if errors.Is(err, ErrArchiveDisabled) {
		return fiber.StatusNotFound
	}
	return errs.StatusCode(err)
}

type materialsRequest struct {
	Materials []MaterialRow `json:"materials"`
}

type usersRequest struct {
	Users []UserRow `json:"users"`
}

// HandleUploadMaterials bulk-imports material rows.
// @Summary Upload Materials
// @Description Bulk-import material rows; existing codes are updated in place, per-row failures do not abort the batch.
// @Tags upload
// @Accept json
// @Produce json
// @Param request body materialsRequest true "Material rows"
// @Success 200 {object} map[string]interface{} "Upload summary"
// @Failure 400 {object} map[string]interface{} "Empty batch or no rows imported"
// @Router /upload-materials [post]
func (h *Handler) HandleUploadMaterials(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req materialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Materials must be an array"})
	}

	out, err := h.service.UploadMaterials(c.Context(), req.Materials)
	if err != nil {
		l.Warn("Materials upload rejected", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	// A batch with zero successful rows is reported as a failure even
	// though the aggregate detail is available.
	if out.Succeeded() == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No materials were uploaded",
			"summary": out.Summary(),
			"errors":  out.Errors,
		})
	}

	return c.JSON(fiber.Map{
		"message": out.Summary(),
		"created": out.Created,
		"updated": out.Updated,
		"failed":  out.Failed,
		"rows":    out.Rows,
		"errors":  out.Errors,
	})
}

// HandleUploadUsers bulk-registers user rows.
// @Summary Upload Users
// @Description Bulk-register user rows; existing usernames are rejected, per-row failures do not abort the batch.
// @Tags upload
// @Accept json
// @Produce json
// @Param request body usersRequest true "User rows"
// @Success 200 {object} map[string]interface{} "Upload summary"
// @Failure 400 {object} map[string]interface{} "Empty batch or no rows imported"
// @Router /upload-users [post]
func (h *Handler) HandleUploadUsers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req usersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Users must be an array"})
	}

	out, err := h.service.UploadUsers(c.Context(), req.Users)
	if err != nil {
		l.Warn("Users upload rejected", zap.Error(err))
		return c.Status(errs.StatusCode(err)).JSON(fiber.Map{"message": err.Error()})
	}

	if out.Succeeded() == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No users were uploaded",
			"summary": out.Summary(),
			"errors":  out.Errors,
		})
	}

	return c.JSON(fiber.Map{
		"message": out.Summary(),
		"created": out.Created,
		"failed":  out.Failed,
		"rows":    out.Rows,
		"errors":  out.Errors,
	})
}

// HandleListReports lists archived upload reports.
// @Summary List Upload Reports
// @Description Names of the archived upload outcome reports.
// @Tags upload
// @Produce json
// @Success 200 {array} string
// @Failure 404 {object} map[string]string "Archive disabled"
// @Router /upload-reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	names, err := h.service.ListReports(c.Context())
	if err != nil {
		l.Warn("Report listing failed", zap.Error(err))
		return c.Status(reportStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(names)
}

// HandleGetReport returns one archived upload report.
// @Summary Get Upload Report
// @Description Raw JSON of one archived upload outcome report.
// @Tags upload
// @Produce json
// @Param name path string true "Report name"
// @Success 200 {object} Outcome
// @Failure 404 {object} map[string]string "Not Found"
// @Router /upload-reports/{name} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("name")

	data, err := h.service.FetchReport(c.Context(), name)
	if err != nil {
		l.Warn("Report fetch failed", zap.Error(err), zap.String("name", name))
		return c.Status(reportStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(data)
}

// HandleDeleteReport removes one archived upload report.
// @Summary Delete Upload Report
// @Description Delete one archived upload outcome report.
// @Tags upload
// @Produce json
// @Param name path string true "Report name"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not Found"
// @Router /upload-reports/{name} [delete]
func (h *Handler) HandleDeleteReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("name")

	if err := h.service.DeleteReport(c.Context(), name); err != nil {
		l.Warn("Report delete failed", zap.Error(err), zap.String("name", name))
		return c.Status(reportStatus(err)).JSON(fiber.Map{"message": err.Error()})
	}

	l.Info("Upload report deleted", zap.String("name", name))
	return c.JSON(fiber.Map{"message": "Report deleted successfully", "name": name})
}
