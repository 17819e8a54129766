package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/middleware"
	"github.com/lagunaro/loansim-backend/internal/services"
)

type IdentifyHandler struct {
	log             *logger.Logger
	identityService services.IdentityService
}

func NewIdentifyHandler(log *logger.Logger, identityService services.IdentityService) *IdentifyHandler {
	handlerLog := log.With("handler", "IdentifyHandler")
	return &IdentifyHandler{log: handlerLog, identityService: identityService}
}

func (ih *IdentifyHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "identify.html", gin.H{
		"title": "Identification",
	})
}

func (ih *IdentifyHandler) Submit(c *gin.Context) {
	token := middleware.SessionToken(c)
	name := c.PostForm("full_name")
	nationalID := c.PostForm("national_id")

	err := ih.identityService.Identify(c.Request.Context(), token, name, nationalID)
	if err != nil {
		if errors.Is(err, services.ErrIncompleteIdentity) {
			c.HTML(http.StatusOK, "identify.html", gin.H{
				"title": "Identification",
				"error": "Complete the name and the national ID to continue.",
			})
			return
		}
		ih.log.Error("Identify failed", "session_id", token, "error", err)
		RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/form")
}
