package services

import (
	"context"
	"fmt"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/normalization"
	"github.com/lagunaro/loansim-backend/internal/repos"
	"github.com/lagunaro/loansim-backend/internal/sessions"
	"github.com/lagunaro/loansim-backend/internal/types"
)

// Answers carries the questionnaire exactly as submitted. Absent form fields
// arrive as empty strings and are stored that way; there is deliberately no
// type coercion or range validation on any of them.
type Answers struct {
	Age             string
	Income          string
	InitialAmount   string
	CreditScore     string
	MonthsEmployed  string
	NumCredits      string
	InterestRatio   string
	Duration        string
	DebtIncomeRatio string
	Education       string
	Mortgage        string
	Dependents      string
	Guarantor       string
	WorkSchedule    string
	MaritalStatus   string
}

type SimulationService interface {
	Submit(ctx context.Context, token string, answers Answers) error
	LastSubmittedID(ctx context.Context, token string) (string, error)
	Lookup(ctx context.Context, rawID string) (*types.Simulation, error)
}

type simulationService struct {
	log            *logger.Logger
	simulationRepo repos.SimulationRepo
	sessions       sessions.Store
	identity       IdentityService
}

func NewSimulationService(log *logger.Logger, simulationRepo repos.SimulationRepo, sessionStore sessions.Store, identity IdentityService) SimulationService {
	serviceLog := log.With("service", "SimulationService")
	return &simulationService{
		log:            serviceLog,
		simulationRepo: simulationRepo,
		sessions:       sessionStore,
		identity:       identity,
	}
}

// Submit writes one questionnaire for the session's identity. The session
// identifier is normalized again here even though Identify already stored it
// normalized; the key written to storage must never depend on how the value
// got into the session.
func (ss *simulationService) Submit(ctx context.Context, token string, answers Answers) error {
	name, sessionID, err := ss.identity.Current(ctx, token)
	if err != nil {
		return err
	}
	nationalID := normalization.NormalizeID(sessionID)
	if nationalID == "" {
		return ErrNotIdentified
	}

	simulation := &types.Simulation{
		NationalID:      nationalID,
		FullName:        name,
		Age:             answers.Age,
		Income:          answers.Income,
		InitialAmount:   answers.InitialAmount,
		CreditScore:     answers.CreditScore,
		MonthsEmployed:  answers.MonthsEmployed,
		NumCredits:      answers.NumCredits,
		InterestRatio:   answers.InterestRatio,
		Duration:        answers.Duration,
		DebtIncomeRatio: answers.DebtIncomeRatio,
		Education:       answers.Education,
		Mortgage:        answers.Mortgage,
		Dependents:      answers.Dependents,
		Guarantor:       answers.Guarantor,
		WorkSchedule:    answers.WorkSchedule,
		MaritalStatus:   answers.MaritalStatus,
	}

	if err := ss.simulationRepo.Upsert(ctx, nil, simulation); err != nil {
		ss.log.Error("Simulation upsert failed", "national_id", nationalID, "error", err)
		return fmt.Errorf("store simulation: %w", err)
	}

	// Session and store are not written atomically. A failure past this
	// point leaves the record in place with no last_id in the session; the
	// confirmation page then shows a blank identifier, nothing worse.
	if err := ss.sessions.Set(ctx, token, sessions.KeyLastID, nationalID); err != nil {
		return err
	}

	ss.log.Info("Simulation stored", "national_id", nationalID)
	return nil
}

func (ss *simulationService) LastSubmittedID(ctx context.Context, token string) (string, error) {
	return ss.sessions.Get(ctx, token, sessions.KeyLastID)
}

// Lookup finds a stored simulation by any spelling of its identifier. A miss
// returns (nil, nil).
func (ss *simulationService) Lookup(ctx context.Context, rawID string) (*types.Simulation, error) {
	nationalID := normalization.NormalizeID(rawID)
	if nationalID == "" {
		return nil, ErrMissingID
	}
	simulation, err := ss.simulationRepo.GetByNationalID(ctx, nil, nationalID)
	if err != nil {
		ss.log.Error("Simulation lookup failed", "national_id", nationalID, "error", err)
		return nil, fmt.Errorf("lookup simulation: %w", err)
	}
	return simulation, nil
}
