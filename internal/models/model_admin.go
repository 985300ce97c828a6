package models

import "time"

// Admin is a back-office user that can log into the administration API.
type Admin struct {
	ID           string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"column:email;type:varchar(256);not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admin"
}
