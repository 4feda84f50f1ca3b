package dto

type CrearJefeProyectoRequest struct {
	Nombre      string `json:"nombre"        validate:"required"`
	Cargo       string `json:"cargo"         validate:"required"`
	Telefono    string `json:"telefono"      validate:"required"`
	Email       string `json:"email"         validate:"required,email"`
	URLFotoJefe string `json:"url_foto_jefe" validate:"required"`
}

type ActualizarJefeProyectoRequest = CrearJefeProyectoRequest

type JefeProyectoResponse struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Cargo       *string `json:"cargo"`
	Telefono    *string `json:"telefono"`
	Email       string  `json:"email"`
	URLFotoJefe *string `json:"url_foto_jefe"`
}
