package models

import "time"

// Transaction actions. The ledger records exactly these two transitions.
const (
	ActionCheckout = "checkout"
	ActionCheckin  = "checkin"
)

// Transaction is one append-only ledger entry. Rows are created exactly once
// per successful checkout/check-in and never updated or deleted. ItemName is
// a snapshot so history survives material deletion.
type Transaction struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"size:128;not null" json:"username"`
	ItemCode string    `gorm:"column:item_code;size:64;not null;index" json:"item_code"`
	ItemName string    `gorm:"column:item_name;size:255" json:"item_name"`
	Action   string    `gorm:"size:16;not null" json:"action"`
	ScanTime time.Time `gorm:"column:scan_time;index" json:"scan_time"`
}

// TableName sets the transactions table name explicitly.
func (Transaction) TableName() string {
	return "transactions"
}
