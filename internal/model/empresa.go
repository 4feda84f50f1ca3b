package model

import "time"

// Empresa is the agency issuing a presupuesto. Row id 1 is the default
// company used when a presupuesto is created without an explicit empresa_id
// (seeded by cmd/seeddata).
type Empresa struct {
	ID         int    `gorm:"primaryKey"`
	Nombre     string `gorm:"not null"`
	Telefono   *string
	URLEmpresa *string `gorm:"column:url_empresa"`
	URLLogo    *string `gorm:"column:url_logo"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Empresa) TableName() string { return "empresas" }
