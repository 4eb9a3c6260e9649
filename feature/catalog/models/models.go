package models

import "time"

// Material is the catalog record for a single lab material.
//
// Code is the business key and is immutable once created. AvailableQty is
// only mutated through Store.AdjustAvailable (checkout/check-in) or an
// explicit admin overwrite; it must always satisfy
// 0 <= AvailableQty <= TotalQty.
type Material struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Code            string    `gorm:"column:material_code;size:64;uniqueIndex;not null" json:"material_code"`
	Name            string    `gorm:"column:material_name;size:255;not null" json:"material_name"`
	MaterialType    string    `gorm:"column:material_type;size:128" json:"material_type,omitempty"`
	SupplierAddress string    `gorm:"column:supplier_address;size:255" json:"supplier_address,omitempty"`
	BillNo          string    `gorm:"column:bill_no_invoice;size:128" json:"bill_no_invoice,omitempty"`
	OpeningBalance  int       `gorm:"column:opening_balance" json:"opening_balance"`
	QtyReceived     int       `gorm:"column:quantity_received" json:"quantity_received"`
	QtyIssued       int       `gorm:"column:quantity_issued" json:"quantity_issued"`
	TotalQty        int       `gorm:"column:total_qty" json:"total_qty"`
	AvailableQty    int       `gorm:"column:available_qty" json:"available_qty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the materials table name explicitly.
func (Material) TableName() string {
	return "materials"
}
