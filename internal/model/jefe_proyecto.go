package model

import "time"

// JefeProyecto is the project manager shown on a proposal. Deleting one nulls
// the reference on existing presupuestos instead of cascading.
type JefeProyecto struct {
	ID          int    `gorm:"primaryKey"`
	Nombre      string `gorm:"not null"`
	Telefono    *string
	Email       string `gorm:"not null"`
	Cargo       *string
	URLFotoJefe *string `gorm:"column:url_foto_jefe"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (JefeProyecto) TableName() string { return "jefes_proyectos" }
