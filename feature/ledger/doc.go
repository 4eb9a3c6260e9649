// Package ledger is the append-only audit trail of checkout/check-in
// activity.
//
// Entries reference materials by code at the time of the transaction; they
// are not live foreign keys, so history outlives deleted materials. The
// store exposes only Append and List.
package ledger
