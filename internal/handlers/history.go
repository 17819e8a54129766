package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/normalization"
	"github.com/lagunaro/loansim-backend/internal/services"
)

type HistoryHandler struct {
	log               *logger.Logger
	simulationService services.SimulationService
}

func NewHistoryHandler(log *logger.Logger, simulationService services.SimulationService) *HistoryHandler {
	handlerLog := log.With("handler", "HistoryHandler")
	return &HistoryHandler{log: handlerLog, simulationService: simulationService}
}

func (hh *HistoryHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "history.html", gin.H{
		"title": "History",
	})
}

func (hh *HistoryHandler) Submit(c *gin.Context) {
	nationalID := normalization.NormalizeID(c.PostForm("national_id"))
	if nationalID == "" {
		c.HTML(http.StatusOK, "history.html", gin.H{
			"title": "History",
			"error": "Enter a valid national ID.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/history/"+url.PathEscape(nationalID))
}

// Detail renders one record, or an explicit empty state when no simulation
// was ever stored under the identifier. The miss is a normal outcome.
func (hh *HistoryHandler) Detail(c *gin.Context) {
	rawID := c.Param("id")

	simulation, err := hh.simulationService.Lookup(c.Request.Context(), rawID)
	if err != nil && !errors.Is(err, services.ErrMissingID) {
		hh.log.Error("History lookup failed", "national_id", rawID, "error", err)
		RenderError(c)
		return
	}

	c.HTML(http.StatusOK, "history_detail.html", gin.H{
		"title":      "Simulation history",
		"nationalID": normalization.NormalizeID(rawID),
		"record":     simulation,
	})
}
