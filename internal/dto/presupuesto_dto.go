package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearPresupuestoRequest creates the aggregate. empresa_id and
// informacion_ids are optional: the composer substitutes the configured
// defaults when they are absent or zero/empty.
type CrearPresupuestoRequest struct {
	NombrePresupuesto      string  `json:"nombre_presupuesto" validate:"required"`
	DescripcionPresupuesto *string `json:"descripcion_presupuesto"`
	ClienteID              int     `json:"cliente_id"         validate:"required,gt=0"`
	EmpresaID              int     `json:"empresa_id"`
	JefeProyectoID         int     `json:"jefe_proyecto_id"   validate:"required,gt=0"`
	Fecha                  string  `json:"fecha"              validate:"required"`
	URLPresupuesto         string  `json:"url_presupuesto"    validate:"required"`
	ContenidoIDs           []int   `json:"contenido_ids"`
	InformacionIDs         []int   `json:"informacion_ids"`
}

// ActualizarPresupuestoRequest replaces the aggregate's scalar row and its
// content links. ContenidoIDs must be present (it may be empty — an empty list
// removes every content link). InformacionIDs is a pointer so the composer can
// distinguish "absent, keep existing links" from "present, replace with this
// set".
type ActualizarPresupuestoRequest struct {
	NombrePresupuesto      string  `json:"nombre_presupuesto" validate:"required"`
	DescripcionPresupuesto *string `json:"descripcion_presupuesto"`
	ClienteID              int     `json:"cliente_id"         validate:"required,gt=0"`
	EmpresaID              int     `json:"empresa_id"         validate:"required,gt=0"`
	JefeProyectoID         int     `json:"jefe_proyecto_id"   validate:"required,gt=0"`
	ContenidoIDs           *[]int  `json:"contenido_ids"      validate:"required"`
	InformacionIDs         *[]int  `json:"informacion_ids"`
	Fecha                  string  `json:"fecha"              validate:"required"`
	URLPresupuesto         string  `json:"url_presupuesto"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContenidoItem struct {
	ID        int     `json:"id"`
	Nombre    *string `json:"nombre"`
	Titulo    string  `json:"titulo"`
	Contenido string  `json:"contenido"`
}

type InformacionItem struct {
	ID        int     `json:"id"`
	Titulo    *string `json:"titulo"`
	Contenido string  `json:"contenido"`
	IconoURL  *string `json:"icono_url"`
}

// PresupuestoAggregate is the composed read model: budget scalars, the two
// deduplicated block collections, and the flattened client/company/manager
// fields. The jefe_proyecto fields are pointers because the manager reference
// may have been nulled by a deletion.
type PresupuestoAggregate struct {
	ID                     int     `json:"id"`
	NombrePresupuesto      string  `json:"nombre_presupuesto"`
	DescripcionPresupuesto *string `json:"descripcion_presupuesto"`
	Fecha                  string  `json:"fecha"`
	URLPresupuesto         string  `json:"url_presupuesto"`

	Contenidos    []ContenidoItem   `json:"contenidos"`
	Informaciones []InformacionItem `json:"informaciones"`

	ClienteID            int     `json:"cliente_id"`
	ClienteNombre        string  `json:"cliente_nombre"`
	ClienteEmpresaNombre *string `json:"cliente_empresa_nombre"`
	ClienteTelefono      string  `json:"cliente_telefono"`
	ClienteEmail         string  `json:"cliente_email"`

	EmpresaID         int     `json:"empresa_id"`
	EmpresaNombre     string  `json:"empresa_nombre"`
	EmpresaTelefono   *string `json:"empresa_telefono"`
	EmpresaURLEmpresa *string `json:"empresa_url_empresa"`
	EmpresaURLLogo    *string `json:"empresa_url_logo"`

	JefeProyectoID       *int    `json:"jefe_proyecto_id"`
	JefeProyectoNombre   *string `json:"jefe_proyecto_nombre"`
	JefeProyectoTelefono *string `json:"jefe_proyecto_telefono"`
	JefeProyectoEmail    *string `json:"jefe_proyecto_email"`
	JefeProyectoCargo    *string `json:"jefe_proyecto_cargo"`
	JefeProyectoFoto     *string `json:"jefe_proyecto_foto"`
}

// PresupuestoResponse is the scalar row returned by update (the composer does
// not recompose the aggregate on update).
type PresupuestoResponse struct {
	ID                     int     `json:"id"`
	NombrePresupuesto      string  `json:"nombre_presupuesto"`
	DescripcionPresupuesto *string `json:"descripcion_presupuesto"`
	ClienteID              int     `json:"cliente_id"`
	EmpresaID              int     `json:"empresa_id"`
	JefeProyectoID         *int    `json:"jefe_proyecto_id"`
	Fecha                  string  `json:"fecha"`
	URLPresupuesto         string  `json:"url_presupuesto"`
}
