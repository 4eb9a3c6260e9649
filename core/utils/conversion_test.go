package utils_test

import (
	"testing"

	"lab-inventory/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, utils.ToInt(42))
	assert.Equal(t, 42, utils.ToInt(int64(42)))
	assert.Equal(t, 42, utils.ToInt(42.9))
	assert.Equal(t, 42, utils.ToInt("42"))
	assert.Equal(t, 42, utils.ToInt(" 42 "))
	assert.Equal(t, 42, utils.ToInt([]byte("42")))

	// Lenient coercion: garbage becomes zero, not an error.
	assert.Equal(t, 0, utils.ToInt("n/a"))
	assert.Equal(t, 0, utils.ToInt(""))
	assert.Equal(t, 0, utils.ToInt(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "RES001", utils.ToString("  RES001  "))
	assert.Equal(t, "RES001", utils.ToString([]byte("RES001")))
	assert.Equal(t, "7", utils.ToString(7))
	assert.Equal(t, "", utils.ToString(nil))
}
