package handler

import (
	"net/http"

	"presupuestos/internal/dto"
	"presupuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type InformacionHandler struct{ svc service.InformacionService }

func NewInformacionHandler(svc service.InformacionService) *InformacionHandler {
	return &InformacionHandler{svc: svc}
}

// Crear POST /api/informacion
func (h *InformacionHandler) Crear(c *gin.Context) {
	var req dto.CrearInformacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Información creada correctamente.", resp)
}

// Listar GET /api/informacion
func (h *InformacionHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Información obtenida correctamente.", resp)
}

// ObtenerPorID GET /api/informacion/:id
func (h *InformacionHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Información obtenida correctamente.", resp)
}

// Actualizar PUT /api/informacion/:id
func (h *InformacionHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarInformacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Información actualizada correctamente.", resp)
}

// Eliminar DELETE /api/informacion/:id
func (h *InformacionHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
