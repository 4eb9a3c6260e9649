package upload

import "fmt"

// RowStatus is the per-row result of a bulk upload.
type RowStatus string

const (
	// StatusCreated means the row produced a new record.
	StatusCreated RowStatus = "CREATED"
	// StatusUpdated means the row overwrote an existing record.
	StatusUpdated RowStatus = "UPDATED"
	// StatusRejected means the row was skipped; Reason says why.
	StatusRejected RowStatus = "REJECTED"
)

// RowOutcome records what happened to a single row. Row numbers are
// user-facing: for materials they match the spreadsheet (data starts at
// row 2, below the header).
type RowOutcome struct {
	Row    int       `json:"row"`
	Status RowStatus `json:"status"`
	Reason string    `json:"reason,omitempty"`
}

// Outcome aggregates a whole batch. Counts are always populated, even on
// partial failure, so callers can tell "nothing happened" from "some rows
// failed".
type Outcome struct {
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Failed  int          `json:"failed"`
	Rows    []RowOutcome `json:"rows"`
	Errors  []string     `json:"errors,omitempty"`
}

// Succeeded returns how many rows produced or updated a record.
func (o *Outcome) Succeeded() int {
	return o.Created + o.Updated
}

// Summary is a one-line human-readable digest of the batch.
func (o *Outcome) Summary() string {
	return fmt.Sprintf("Created: %d, Updated: %d, Failed: %d", o.Created, o.Updated, o.Failed)
}

func (o *Outcome) created(row int) {
	o.Created++
	o.Rows = append(o.Rows, RowOutcome{Row: row, Status: StatusCreated})
}

func (o *Outcome) updated(row int) {
	o.Updated++
	o.Rows = append(o.Rows, RowOutcome{Row: row, Status: StatusUpdated})
}

func (o *Outcome) rejected(row int, reason string) {
	o.Failed++
	o.Rows = append(o.Rows, RowOutcome{Row: row, Status: StatusRejected, Reason: reason})
	o.Errors = append(o.Errors, fmt.Sprintf("Row %d: %s", row, reason))
}
