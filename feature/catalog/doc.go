// Package catalog is the durable store of material records and the sole
// authority over their quantity fields.
//
// The Store guarantees the core invariant 0 <= available_qty <= total_qty:
// decrements are conditional single-statement updates so concurrent
// checkouts cannot drive availability negative, and increments are clamped
// at total_qty in SQL. The handler additionally exposes the admin browse and
// edit surface (list, search, get, update, delete).
package catalog
