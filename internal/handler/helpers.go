package handler

import (
	"net/http"
	"strconv"
	"strings"

	"presupuestos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// envelope is the uniform response shape: {"status": ..., "message": ..., "data": ...}.
type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, envelope{Status: "success", Message: message, Data: data})
}

// respondError maps the apierror taxonomy onto HTTP statuses. Anything that is
// not a typed apierror surfaces as 500 with a generic message.
func respondError(c *gin.Context, err error) {
	var status int
	switch apierror.KindOf(err) {
	case apierror.KindValidation:
		status = http.StatusBadRequest
	case apierror.KindNotFound:
		status = http.StatusNotFound
	case apierror.KindConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Error interno del servidor"
	}
	c.JSON(status, envelope{Status: "error", Message: msg})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes a 400 naming the offending fields when validation
// fails; the caller should return immediately.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: "JSON inválido: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var fields []string
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, snakeCase(fe.Field()))
		}
		apiErr := apierror.Validation(fields...)
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: apiErr.Message, Data: gin.H{"fields": fields}})
		return false
	}
	return true
}

// parseID extracts the :id path parameter. Writes a 400 and returns false on a
// non-numeric id.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, envelope{Status: "error", Message: "ID inválido"})
		return 0, false
	}
	return id, true
}

// snakeCase converts a Go struct field name to its json tag convention
// (NombrePresupuesto -> nombre_presupuesto) so validation errors name fields
// the way the client sent them.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			// Break before an uppercase that starts a new word: after a
			// lowercase/digit, or at the end of an acronym run (URLFoto -> url_foto).
			if i > 0 && (isLower(runes[i-1]) || (i+1 < len(runes) && isLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLower(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
