package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/services"
)

type IdentityMiddleware struct {
	log      *logger.Logger
	identity services.IdentityService
}

func NewIdentityMiddleware(log *logger.Logger, identity services.IdentityService) *IdentityMiddleware {
	middlewareLogger := log.With("Middleware", "IdentityMiddleware")
	return &IdentityMiddleware{log: middlewareLogger, identity: identity}
}

// RequireIdentity gates the simulation form. A session with no usable
// identity is sent back to the identification step; that is a guard, not an
// error, so it answers with a redirect rather than a failure page.
func (im *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		_, _, err := im.identity.Current(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrNotIdentified) {
				c.Redirect(http.StatusFound, "/identify")
				c.Abort()
				return
			}
			im.log.Error("Session read failed", "session_id", token, "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Next()
	}
}
