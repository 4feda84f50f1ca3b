package dto

type CrearInformacionRequest struct {
	Titulo    *string `json:"titulo"`
	IconoURL  *string `json:"icono_url"`
	Contenido string  `json:"contenido" validate:"required"`
}

type ActualizarInformacionRequest = CrearInformacionRequest

type InformacionResponse struct {
	ID        int     `json:"id"`
	Titulo    *string `json:"titulo"`
	IconoURL  *string `json:"icono_url"`
	Contenido string  `json:"contenido"`
}
