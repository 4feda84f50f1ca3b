package handler

import (
	"errors"
	"net/http"

	"presupuestos/internal/dto"
	"presupuestos/internal/middleware"
	"presupuestos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesInvalidas) {
			c.JSON(http.StatusUnauthorized, envelope{Status: "error", Message: "Credenciales inválidas"})
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Inicio de sesión correcto.", resp)
}

// Logout POST /api/auth/logout
//
// Tokens are stateless, so there is nothing to invalidate server-side; the
// endpoint exists so the client has a uniform place to end the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	respond(c, http.StatusOK, "Sesión cerrada correctamente.", nil)
}

// Perfil GET /api/auth/me
//
// Returns the user the current token was issued for, so the frontend can
// restore the session without decoding the JWT itself.
func (h *AuthHandler) Perfil(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, envelope{Status: "error", Message: "Autenticación requerida"})
		return
	}
	resp, err := h.svc.ObtenerUsuario(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Perfil del usuario.", resp)
}
