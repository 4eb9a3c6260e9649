// Package utils contains small conversion helpers shared across features.
//
// The converters implement the boundary normalization for bulk uploads:
// string fields are trimmed and numeric fields are coerced leniently
// (non-numeric becomes 0, never an error).
package utils
