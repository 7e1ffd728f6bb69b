package handlers

import (
	"net/http"

	"bolao-backend/internal/admin"
	"bolao-backend/internal/domain"
	"bolao-backend/internal/http/middleware"
	"bolao-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Envelope strings returned by the admin surface.
const (
	msgNotAuthorized  = "Não autorizado"
	msgTableForbidden = "Tabela não permitida"
	msgUnknownAction  = "Ação desconhecida"
)

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição vazio"})
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido: " + err.Error()})
		return false
	}
	return true
}

// resolveAdmin runs the authorization gate: session → profile row → role.
// It must succeed before any table access happens.
func resolveAdmin(c *gin.Context) (admin.Caller, error) {
	uid := middleware.GetUserID(c)
	if uid == 0 {
		return admin.Caller{}, domain.UnauthenticatedError{}
	}

	profile, err := repositories.ProfileRepository{}.GetByID(uid)
	if err != nil {
		return admin.Caller{}, domain.ForbiddenError{}
	}
	if !profile.IsAdmin() {
		return admin.Caller{}, domain.ForbiddenError{Role: profile.Role}
	}

	return admin.Caller{ID: profile.ID, Name: profile.Name, Role: profile.Role}, nil
}

// respondGatewayError maps the error taxonomy onto the uniform envelope.
func respondGatewayError(c *gin.Context, err error) {
	switch {
	case domain.IsUnauthenticated(err) || domain.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"error": msgNotAuthorized})
	case domain.IsInvalidTable(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTableForbidden})
	case domain.IsUnknownAction(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUnknownAction})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		// inclui NotFound de busca unitária e falhas de consulta
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
