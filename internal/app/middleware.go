package app

import (
	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/middleware"
)

type Middleware struct {
	Session  *middleware.SessionMiddleware
	Identity *middleware.IdentityMiddleware
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Session:  middleware.NewSessionMiddleware(log),
		Identity: middleware.NewIdentityMiddleware(log, serviceset.Identity),
	}
}
