package handlers

import (
	"net/http"

	intconfig "bolao-backend/internal/config"
	"bolao-backend/internal/standings"

	"github.com/gin-gonic/gin"
)

// Standings proxies the external standings table with a 5-minute cache.
// The X-Cache header tags the cache state (HIT/MISS/STALE/MOCK).
//
// GET /api/standings?tournamentId=&seasonId=
func Standings(svc *standings.Service, env intconfig.Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		tournamentID := c.DefaultQuery("tournamentId", env.DefaultTournamentID)
		seasonID := c.DefaultQuery("seasonId", env.DefaultSeasonID)

		payload, tag := svc.Standings(tournamentID, seasonID)

		c.Header("X-Cache", tag)
		c.Header("Cache-Control", "public, max-age=300")
		c.Data(http.StatusOK, "application/json", payload)
	}
}
