// Package checkout is the inventory engine: it applies the two availability
// transitions (checkout decrements, check-in increments) against the catalog
// and appends the matching ledger entry inside one database transaction.
//
// Atomicity comes from two layers: the catalog's conditional UPDATE makes
// check-and-decrement a single statement, and the surrounding transaction
// ties the quantity change to the ledger append so neither is observable
// without the other.
package checkout
