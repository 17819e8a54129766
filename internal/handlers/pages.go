package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/middleware"
	"github.com/lagunaro/loansim-backend/internal/services"
)

type PageHandler struct {
	simulationService services.SimulationService
}

func NewPageHandler(simulationService services.SimulationService) *PageHandler {
	return &PageHandler{simulationService: simulationService}
}

func (ph *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Loan Simulator",
	})
}

// Confirmation shows whichever identifier was last written by this session.
// An absent identifier renders blank; it is not an error to land here early.
func (ph *PageHandler) Confirmation(c *gin.Context) {
	token := middleware.SessionToken(c)
	lastID, err := ph.simulationService.LastSubmittedID(c.Request.Context(), token)
	if err != nil {
		RenderError(c)
		return
	}
	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"title":      "Form completed",
		"nationalID": lastID,
	})
}
