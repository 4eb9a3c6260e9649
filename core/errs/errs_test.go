package errs_test

import (
	"fmt"
	"testing"

	"lab-inventory/core/errs"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, errs.StatusCode(errs.ErrMaterialNotFound))
	assert.Equal(t, fiber.StatusConflict, errs.StatusCode(errs.ErrDuplicateCode))
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusCode(errs.ErrInvalidQuantity))
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusCode(errs.ErrInsufficientStock))
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusCode(errs.ErrValidationFailed))
	assert.Equal(t, fiber.StatusInternalServerError, errs.StatusCode(fmt.Errorf("disk on fire")))
}

func TestStatusCodeSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("row 3: %w", errs.ErrValidationFailed)
	assert.Equal(t, fiber.StatusBadRequest, errs.StatusCode(err))
}

func TestInsufficientReportsAvailability(t *testing.T) {
	err := errs.Insufficient(7)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "only 7 unit(s) available")
}
