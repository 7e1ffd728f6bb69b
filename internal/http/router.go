package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "bolao-backend/internal/config"
	h "bolao-backend/internal/http/handlers"
	"bolao-backend/internal/http/middleware"
	"bolao-backend/internal/logos"
	"bolao-backend/internal/standings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()

	corsCfg := cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			log.Printf("[HTTP] panic recuperado request_id=%s: %v", middleware.GetRequestID(c), recovered)
			c.AbortWithStatusJSON(stdhttp.StatusInternalServerError, gin.H{"error": "Erro interno"})
		}),
		cors.New(corsCfg),
		middleware.Auth(env.JWTSecret),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	standingsSvc := standings.NewService(standings.NewClient(
		"https://"+env.FootballAPIHost,
		env.FootballAPIKey,
		env.FootballAPIHost,
	))
	logoResolver := logos.NewResolver(env.LogoDir)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes(r))

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))
		auth.POST("/register", h.Register())

		// Admin surface
		adm := api.Group("/admin")
		adm.POST("/crud", h.AdminCRUD())
		adm.GET("/dashboard", h.Dashboard())
		adm.GET("/reports/payments.pdf", h.PaymentsReportPDF())

		// Proxies
		api.GET("/standings", h.Standings(standingsSvc, env))
		api.GET("/logos/:teamId", h.TeamLogo(logoResolver))
	}

	return r
}
