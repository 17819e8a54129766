package app

import (
	"time"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/utils"
)

type Config struct {
	Port          string
	TemplatesGlob string
	SessionTTL    time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	templatesGlob := utils.GetEnv("TEMPLATES_GLOB", "web/templates/*.html", log)
	sessionTTLSeconds := utils.GetEnvAsInt("SESSION_TTL_SECONDS", 86400, log)
	return Config{
		Port:          port,
		TemplatesGlob: templatesGlob,
		SessionTTL:    time.Duration(sessionTTLSeconds) * time.Second,
	}
}
