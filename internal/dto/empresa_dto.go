package dto

type CrearEmpresaRequest struct {
	Nombre     string `json:"nombre"      validate:"required"`
	Telefono   string `json:"telefono"    validate:"required"`
	URLEmpresa string `json:"url_empresa" validate:"required"`
	URLLogo    string `json:"url_logo"    validate:"required"`
}

type ActualizarEmpresaRequest = CrearEmpresaRequest

type EmpresaResponse struct {
	ID         int     `json:"id"`
	Nombre     string  `json:"nombre"`
	Telefono   *string `json:"telefono"`
	URLEmpresa *string `json:"url_empresa"`
	URLLogo    *string `json:"url_logo"`
}
