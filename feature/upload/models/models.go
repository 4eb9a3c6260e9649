package models

import "time"

// User is an account row created by bulk user registration. The core stores
// it verbatim; authentication policy lives outside this service.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:128;uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	FullName   string    `gorm:"size:255" json:"fullname,omitempty"`
	Mail       string    `gorm:"size:255" json:"mail,omitempty"`
	RollNo     string    `gorm:"size:64" json:"rollno,omitempty"`
	Department string    `gorm:"size:128" json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the users table name explicitly.
func (User) TableName() string {
	return "users"
}
