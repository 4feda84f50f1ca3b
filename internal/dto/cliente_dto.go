package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre        string `json:"nombre"         validate:"required"`
	EmpresaNombre string `json:"empresa_nombre" validate:"required"`
	Telefono      string `json:"telefono"       validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
}

type ActualizarClienteRequest struct {
	Nombre        string `json:"nombre"         validate:"required"`
	EmpresaNombre string `json:"empresa_nombre" validate:"required"`
	Telefono      string `json:"telefono"       validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID            int     `json:"id"`
	Nombre        string  `json:"nombre"`
	EmpresaNombre *string `json:"empresa_nombre"`
	Telefono      string  `json:"telefono"`
	Email         string  `json:"email"`
}
