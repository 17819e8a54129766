package app

import (
	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/services"
	"github.com/lagunaro/loansim-backend/internal/sessions"
)

type Services struct {
	Identity   services.IdentityService
	Simulation services.SimulationService
}

func wireServices(log *logger.Logger, reposet Repos, sessionStore sessions.Store) Services {
	log.Info("Wiring services...")
	identity := services.NewIdentityService(log, sessionStore)
	simulation := services.NewSimulationService(log, reposet.Simulation, sessionStore, identity)
	return Services{
		Identity:   identity,
		Simulation: simulation,
	}
}
