package model

import "time"

// ContenidoPresupuesto is a rich-text content block (HTML) composed into
// presupuestos via the presupuesto_contenido junction table.
type ContenidoPresupuesto struct {
	ID        int `gorm:"primaryKey"`
	Nombre    *string
	Titulo    string `gorm:"not null"`
	Contenido string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ContenidoPresupuesto) TableName() string { return "contenido_presupuesto" }
