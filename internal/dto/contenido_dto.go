package dto

type CrearContenidoRequest struct {
	Nombre    *string `json:"nombre"`
	Titulo    string  `json:"titulo"    validate:"required"`
	Contenido string  `json:"contenido" validate:"required"`
}

type ActualizarContenidoRequest = CrearContenidoRequest

type ContenidoResponse struct {
	ID        int     `json:"id"`
	Nombre    *string `json:"nombre"`
	Titulo    string  `json:"titulo"`
	Contenido string  `json:"contenido"`
}
