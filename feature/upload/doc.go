// Package upload is the bulk reconciler for spreadsheet imports.
//
// A batch is an ordered list of rows; every row is validated, normalized and
// applied independently, so one bad row never aborts the rest. Materials
// upsert by code (re-importing the same file is idempotent); users are
// create-only and duplicates are rejected. The aggregate outcome always
// carries counts and per-row rejection reasons, and is optionally archived
// to object storage for later audit.
package upload
