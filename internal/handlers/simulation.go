package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/middleware"
	"github.com/lagunaro/loansim-backend/internal/services"
)

type SimulationHandler struct {
	log               *logger.Logger
	simulationService services.SimulationService
}

func NewSimulationHandler(log *logger.Logger, simulationService services.SimulationService) *SimulationHandler {
	handlerLog := log.With("handler", "SimulationHandler")
	return &SimulationHandler{log: handlerLog, simulationService: simulationService}
}

func (sh *SimulationHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", gin.H{
		"title": "Simulate your loan",
	})
}

func (sh *SimulationHandler) SubmitForm(c *gin.Context) {
	token := middleware.SessionToken(c)

	answers := services.Answers{
		Age:             c.PostForm("age"),
		Income:          c.PostForm("income"),
		InitialAmount:   c.PostForm("initial_amount"),
		CreditScore:     c.PostForm("credit_score"),
		MonthsEmployed:  c.PostForm("months_employed"),
		NumCredits:      c.PostForm("num_credits"),
		InterestRatio:   c.PostForm("interest_ratio"),
		Duration:        c.PostForm("duration"),
		DebtIncomeRatio: c.PostForm("debt_income_ratio"),
		Education:       c.PostForm("education"),
		Mortgage:        c.PostForm("mortgage"),
		Dependents:      c.PostForm("dependents"),
		Guarantor:       c.PostForm("guarantor"),
		WorkSchedule:    c.PostForm("work_schedule"),
		MaritalStatus:   c.PostForm("marital_status"),
	}

	err := sh.simulationService.Submit(c.Request.Context(), token, answers)
	if err != nil {
		if errors.Is(err, services.ErrNotIdentified) {
			c.Redirect(http.StatusFound, "/identify")
			return
		}
		sh.log.Error("Form submission failed", "session_id", token, "error", err)
		RenderError(c)
		return
	}

	c.Redirect(http.StatusFound, "/confirmation")
}
