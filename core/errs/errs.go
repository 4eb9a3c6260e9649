package errs

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Business errors surfaced by the inventory core. Handlers translate these
// into HTTP statuses via StatusCode; everything else is a storage failure.
var (
	// ErrInvalidQuantity is returned when a checkout/check-in quantity is zero or negative.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrMaterialNotFound is returned when no material matches the given code or id.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrInsufficientStock is returned when a checkout requests more units than are available.
	ErrInsufficientStock = errors.New("insufficient stock available")
	// ErrDuplicateCode is returned when creating a material whose code already exists.
	ErrDuplicateCode = errors.New("material code already exists")
	// ErrValidationFailed is returned for malformed input (missing fields, empty batches).
	ErrValidationFailed = errors.New("validation failed")
)

// Insufficient wraps ErrInsufficientStock with the current availability so the
// caller sees how many units remain.
func Insufficient(available int) error {
	return fmt.Errorf("%w: only %d unit(s) available", ErrInsufficientStock, available)
}

// StatusCode maps a business error to the HTTP status handlers should return.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMaterialNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrDuplicateCode):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrValidationFailed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
