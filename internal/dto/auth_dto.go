package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CrearUsuarioRequest struct {
	Role     string  `json:"role"     validate:"required"`
	Email    string  `json:"email"    validate:"required,email"`
	Name     string  `json:"name"     validate:"required"`
	Password string  `json:"password" validate:"required,min=8"`
	Company  *string `json:"company"`
}

type ActualizarUsuarioRequest struct {
	Role     string  `json:"role"     validate:"omitempty"`
	Email    string  `json:"email"    validate:"omitempty,email"`
	Name     string  `json:"name"`
	Password string  `json:"password" validate:"omitempty,min=8"`
	Company  *string `json:"company"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse deliberately has no password field: hashes never leave the
// service layer.
type UsuarioResponse struct {
	ID      int     `json:"id"`
	Role    string  `json:"role"`
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Company *string `json:"company"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
