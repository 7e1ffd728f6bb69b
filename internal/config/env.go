package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	FootballAPIKey  string
	FootballAPIHost string

	DefaultTournamentID string
	DefaultSeasonID     string

	LogoDir string

	CORSOrigins []string
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func LoadEnv() Env {
	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "bolao_app"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		FootballAPIKey:  strings.TrimSpace(os.Getenv("FOOTBALL_API_KEY")),
		FootballAPIHost: getenv("FOOTBALL_API_HOST", "api.sofascore.com"),

		// Brasileirão Série A como padrão
		DefaultTournamentID: getenv("DEFAULT_TOURNAMENT_ID", "325"),
		DefaultSeasonID:     getenv("DEFAULT_SEASON_ID", "87678"),

		LogoDir: getenv("LOGO_DIR", "assets/logos"),

		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
