package handler

import (
	"net/http"

	"presupuestos/internal/dto"
	"presupuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type ContenidosHandler struct{ svc service.ContenidoService }

func NewContenidosHandler(svc service.ContenidoService) *ContenidosHandler {
	return &ContenidosHandler{svc: svc}
}

// Crear POST /api/contenido-presupuesto
func (h *ContenidosHandler) Crear(c *gin.Context) {
	var req dto.CrearContenidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Contenido creado correctamente.", resp)
}

// Listar GET /api/contenido-presupuesto
func (h *ContenidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Contenidos obtenidos correctamente.", resp)
}

// ObtenerPorID GET /api/contenido-presupuesto/:id
func (h *ContenidosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Contenido obtenido correctamente.", resp)
}

// Actualizar PUT /api/contenido-presupuesto/:id
func (h *ContenidosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarContenidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Contenido actualizado correctamente.", resp)
}

// Eliminar DELETE /api/contenido-presupuesto/:id
func (h *ContenidosHandler) Eliminar(c *gin.Context) {
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
