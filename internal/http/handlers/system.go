package handlers

import (
	"net/http"

	intconfig "bolao-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness.
//
// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DBCheck pings the shared connection.
//
// GET /api/db-check
func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

// Routes lists the registered route table.
//
// GET /api/routes
func Routes(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := engine.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, r := range routes {
			out = append(out, gin.H{"method": r.Method, "path": r.Path})
		}
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}
