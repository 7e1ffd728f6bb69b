package handlers

import (
	"net/http"

	"bolao-backend/internal/admin"
	"bolao-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// AdminCRUD is the generic table gateway: one POST endpoint carrying an
// action name plus a generic payload, gated on the caller's admin role.
//
// POST /api/admin/crud
func AdminCRUD() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := resolveAdmin(c)
		if err != nil {
			respondGatewayError(c, err)
			return
		}

		var req admin.Request
		if !BindJSONOrError(c, &req) {
			return
		}

		gw := admin.Gateway{RequestID: middleware.GetRequestID(c)}
		res, err := gw.Execute(req, caller)
		if err != nil {
			respondGatewayError(c, err)
			return
		}

		switch {
		case res.Success:
			c.JSON(http.StatusOK, gin.H{"success": true})
		case res.Count != nil:
			c.JSON(http.StatusOK, gin.H{"data": res.Data, "count": res.Count})
		default:
			c.JSON(http.StatusOK, gin.H{"data": res.Data})
		}
	}
}
