package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		TemplatesGlob:      cfg.TemplatesGlob,
		SessionMiddleware:  middlewareset.Session,
		IdentityMiddleware: middlewareset.Identity,
		PageHandler:        handlerset.Page,
		IdentifyHandler:    handlerset.Identify,
		SimulationHandler:  handlerset.Simulation,
		HistoryHandler:     handlerset.History,
	})
}
