package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lagunaro/loansim-backend/internal/logger"
)

const (
	// SessionCookieName carries the opaque session token between requests.
	SessionCookieName = "sid"

	contextSessionToken = "session_token"
)

type SessionMiddleware struct {
	log *logger.Logger
}

func NewSessionMiddleware(log *logger.Logger) *SessionMiddleware {
	middlewareLogger := log.With("Middleware", "SessionMiddleware")
	return &SessionMiddleware{log: middlewareLogger}
}

// EnsureToken guarantees every request carries a session token. A browser
// without the cookie gets a fresh uuid; handlers only ever see the token via
// SessionToken, never the cookie itself.
func (sm *SessionMiddleware) EnsureToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			token = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, token, 0, "/", "", false, true)
			sm.log.Debug("Minted session token", "session_id", token)
		}
		c.Set(contextSessionToken, token)
		c.Next()
	}
}

// SessionToken returns the token EnsureToken attached to this request.
func SessionToken(c *gin.Context) string {
	return c.GetString(contextSessionToken)
}
