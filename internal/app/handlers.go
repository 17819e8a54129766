package app

import (
	"github.com/lagunaro/loansim-backend/internal/handlers"
	"github.com/lagunaro/loansim-backend/internal/logger"
)

type Handlers struct {
	Page       *handlers.PageHandler
	Identify   *handlers.IdentifyHandler
	Simulation *handlers.SimulationHandler
	History    *handlers.HistoryHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Page:       handlers.NewPageHandler(serviceset.Simulation),
		Identify:   handlers.NewIdentifyHandler(log, serviceset.Identity),
		Simulation: handlers.NewSimulationHandler(log, serviceset.Simulation),
		History:    handlers.NewHistoryHandler(log, serviceset.Simulation),
	}
}
