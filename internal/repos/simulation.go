package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/types"
)

type SimulationRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, simulation *types.Simulation) error
	GetByNationalID(ctx context.Context, tx *gorm.DB, nationalID string) (*types.Simulation, error)
}

type simulationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSimulationRepo(db *gorm.DB, baseLog *logger.Logger) SimulationRepo {
	repoLog := baseLog.With("repo", "SimulationRepo")
	return &simulationRepo{db: db, log: repoLog}
}

// The replace must cover every column except the key. UpdateAll would skip
// created_at (gorm leaves auto-create fields out of conflict assignments),
// so the columns are listed explicitly.
var simulationUpsertColumns = []string{
	"full_name", "age", "income", "initial_amount", "credit_score",
	"months_employed", "num_credits", "interest_ratio", "duration",
	"debt_income_ratio", "education", "mortgage", "dependents",
	"guarantor", "work_schedule", "marital_status", "created_at",
}

// Upsert inserts the row, or replaces every column of the existing row when
// the key is already present. This is a wholesale overwrite, not a merge:
// blank fields in the new submission blank out whatever was stored before,
// and created_at moves to the new write time.
func (sr *simulationRepo) Upsert(ctx context.Context, tx *gorm.DB, simulation *types.Simulation) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	simulation.CreatedAt = time.Now()

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "national_id"}},
			DoUpdates: clause.AssignmentColumns(simulationUpsertColumns),
		}).
		Create(simulation).Error; err != nil {
		return err
	}

	return nil
}

// GetByNationalID expects an already-normalized key. A missing row is not an
// error; it returns (nil, nil).
func (sr *simulationRepo) GetByNationalID(ctx context.Context, tx *gorm.DB, nationalID string) (*types.Simulation, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var result types.Simulation

	if err := transaction.WithContext(ctx).
		Where("national_id = ?", nationalID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
