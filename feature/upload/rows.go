package upload

import "lab-inventory/core/utils"

// Spreadsheet exporters are inconsistent about types (numbers arrive as
// strings or floats) and about field names (item_code vs material_code).
// Row fields are therefore untyped and normalized once, here at the
// boundary; everything past normalize sees canonical, typed values.

// MaterialRow is one raw row of a materials upload batch.
type MaterialRow struct {
	Code         any `json:"material_code"`
	ItemCode     any `json:"item_code"`
	Name         any `json:"material_name"`
	ItemName     any `json:"item_name"`
	TotalQty     any `json:"total_qty"`
	AvailableQty any `json:"available_qty"`
}

type normalizedMaterial struct {
	Code         string
	Name         string
	TotalQty     int
	AvailableQty int
}

func (r MaterialRow) normalize() normalizedMaterial {
	code := utils.ToString(r.Code)
	if code == "" {
		code = utils.ToString(r.ItemCode)
	}
	name := utils.ToString(r.Name)
	if name == "" {
		name = utils.ToString(r.ItemName)
	}

	return normalizedMaterial{
		Code:         code,
		Name:         name,
		TotalQty:     utils.ToInt(r.TotalQty),
		AvailableQty: utils.ToInt(r.AvailableQty),
	}
}

// UserRow is one raw row of a users upload batch.
type UserRow struct {
	Username   any `json:"username"`
	Password   any `json:"password"`
	FullName   any `json:"full_name"`
	Mail       any `json:"mail"`
	RollNo     any `json:"roll_no"`
	Department any `json:"department"`
}

type normalizedUser struct {
	Username   string
	Password   string
	FullName   string
	Mail       string
	RollNo     string
	Department string
}

func (r UserRow) normalize() normalizedUser {
	return normalizedUser{
		Username:   utils.ToString(r.Username),
		Password:   utils.ToString(r.Password),
		FullName:   utils.ToString(r.FullName),
		Mail:       utils.ToString(r.Mail),
		RollNo:     utils.ToString(r.RollNo),
		Department: utils.ToString(r.Department),
	}
}
