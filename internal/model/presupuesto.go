package model

import "time"

// Presupuesto is the aggregate root: one client, one company, one project
// manager, plus many-to-many content and informacion blocks. JefeProyectoID is
// nullable because manager deletion nulls the reference (ON DELETE SET NULL)
// while cliente/empresa deletion cascades.
type Presupuesto struct {
	ID                     int    `gorm:"primaryKey"`
	NombrePresupuesto      string `gorm:"not null"`
	DescripcionPresupuesto *string
	ClienteID              int `gorm:"not null"`
	EmpresaID              int `gorm:"not null"`
	JefeProyectoID         *int
	Fecha                  time.Time `gorm:"type:date;not null"`
	// URLPresupuesto is the shareable proposal link, generated once at
	// creation and treated as immutable.
	URLPresupuesto string `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Cliente      *Cliente      `gorm:"foreignKey:ClienteID"`
	Empresa      *Empresa      `gorm:"foreignKey:EmpresaID"`
	JefeProyecto *JefeProyecto `gorm:"foreignKey:JefeProyectoID"`

	Contenidos    []ContenidoPresupuesto `gorm:"many2many:presupuesto_contenido;joinForeignKey:PresupuestoID;joinReferences:ContenidoPresupuestoID"`
	Informaciones []Informacion          `gorm:"many2many:presupuesto_informacion;joinForeignKey:PresupuestoID;joinReferences:InformacionID"`
}

func (Presupuesto) TableName() string { return "presupuestos" }

// PresupuestoContenido is the content junction row. It carries a surrogate id
// and no unique pair constraint, so the composer must deduplicate content ids
// before insert.
type PresupuestoContenido struct {
	ID                     int `gorm:"primaryKey"`
	PresupuestoID          int `gorm:"not null"`
	ContenidoPresupuestoID int `gorm:"not null"`
}

func (PresupuestoContenido) TableName() string { return "presupuesto_contenido" }

// PresupuestoInformacion is the informacion junction row. The composite
// primary key enforces at most one link per (presupuesto, informacion) pair,
// giving insert-if-absent semantics under ON CONFLICT DO NOTHING.
type PresupuestoInformacion struct {
	PresupuestoID int `gorm:"primaryKey"`
	InformacionID int `gorm:"primaryKey"`
}

func (PresupuestoInformacion) TableName() string { return "presupuesto_informacion" }
