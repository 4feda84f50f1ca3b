package handler

import (
	"net/http"

	"presupuestos/internal/dto"
	"presupuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type JefesProyectosHandler struct{ svc service.JefeProyectoService }

func NewJefesProyectosHandler(svc service.JefeProyectoService) *JefesProyectosHandler {
	return &JefesProyectosHandler{svc: svc}
}

// Crear POST /api/jefes-proyectos
func (h *JefesProyectosHandler) Crear(c *gin.Context) {
	var req dto.CrearJefeProyectoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Jefe de proyecto creado correctamente.", resp)
}

// Listar GET /api/jefes-proyectos
func (h *JefesProyectosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Jefes de proyecto obtenidos correctamente.", resp)
}

// ObtenerPorID GET /api/jefes-proyectos/:id
func (h *JefesProyectosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Jefe de proyecto obtenido correctamente.", resp)
}

// Actualizar PUT /api/jefes-proyectos/:id
func (h *JefesProyectosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarJefeProyectoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Jefe de proyecto actualizado correctamente.", resp)
}

// Eliminar DELETE /api/jefes-proyectos/:id
func (h *JefesProyectosHandler) Eliminar(c *gin.Context) {
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
