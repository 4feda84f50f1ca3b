package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"presupuestos/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedExtensions mirrors the image formats the proposal editor accepts.
var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

const maxUploadSize = 10 << 20 // 10 MiB

type UploadsHandler struct{ cfg *config.Config }

func NewUploadsHandler(cfg *config.Config) *UploadsHandler {
	return &UploadsHandler{cfg: cfg}
}

// Subir POST /api/upload
//
// Stores the multipart "image" file under the configured upload directory with
// a random name and returns the public URL path.
func (h *UploadsHandler) Subir(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: "No se ha enviado ningún archivo."})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: "El archivo supera el tamaño máximo permitido."})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: "Solo se permiten imágenes (jpeg, jpg, png, gif)."})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		respondError(c, err)
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Imagen subida correctamente.", gin.H{
		"filename": name,
		"url":      fmt.Sprintf("/uploads/%s", name),
	})
}
