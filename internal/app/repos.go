package app

import (
	"gorm.io/gorm"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/repos"
)

type Repos struct {
	Simulation repos.SimulationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Simulation: repos.NewSimulationRepo(db, log),
	}
}
