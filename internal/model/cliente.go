package model

import "time"

// Cliente is the recipient of a presupuesto. EmpresaNombre is free text, not
// a foreign key: the client's own company need not exist in empresas.
type Cliente struct {
	ID            int    `gorm:"primaryKey"`
	Nombre        string `gorm:"not null"`
	EmpresaNombre *string
	Telefono      string `gorm:"not null"`
	Email         string `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Cliente) TableName() string { return "clientes" }
