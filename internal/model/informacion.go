package model

import "time"

// Informacion is a reusable informational block (terms, contact info, ...)
// attachable to many presupuestos. Rows 1-3 form the default seed set linked
// to presupuestos created without an explicit informacion_ids list.
type Informacion struct {
	ID        int `gorm:"primaryKey"`
	Titulo    *string
	IconoURL  *string `gorm:"column:icono_url"`
	Contenido string  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Informacion) TableName() string { return "informacion" }
