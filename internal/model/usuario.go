package model

import "time"

// Usuario is an admin-UI account. PasswordHash is a bcrypt hash and is never
// serialized in responses (the dto layer has no field for it).
type Usuario struct {
	ID           int    `gorm:"primaryKey"`
	Role         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string `gorm:"column:password"`
	Company      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "users" }
