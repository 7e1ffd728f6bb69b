package handlers

import (
	"net/http"

	"bolao-backend/internal/logos"

	"github.com/gin-gonic/gin"
)

// TeamLogo serves team SVG logos from disk, falling back to a synthesized
// placeholder. Always 200.
//
// GET /api/logos/:teamId
func TeamLogo(resolver *logos.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		svg := resolver.Logo(c.Param("teamId"))

		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "image/svg+xml", svg)
	}
}
