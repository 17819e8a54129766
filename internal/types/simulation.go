package types

import (
	"time"
)

// Simulation is one captured questionnaire, keyed by the normalized national
// identifier. At most one row exists per identifier; a re-submission replaces
// the whole row. Every questionnaire field is stored exactly as submitted,
// as text, with no coercion or range checks.
type Simulation struct {
	NationalID     string    `gorm:"primaryKey;column:national_id" json:"national_id"`
	FullName       string    `gorm:"not null;column:full_name" json:"full_name"`
	Age            string    `gorm:"column:age" json:"age"`
	Income         string    `gorm:"column:income" json:"income"`
	InitialAmount  string    `gorm:"column:initial_amount" json:"initial_amount"`
	CreditScore    string    `gorm:"column:credit_score" json:"credit_score"`
	MonthsEmployed string    `gorm:"column:months_employed" json:"months_employed"`
	NumCredits     string    `gorm:"column:num_credits" json:"num_credits"`
	InterestRatio  string    `gorm:"column:interest_ratio" json:"interest_ratio"`
	Duration       string    `gorm:"column:duration" json:"duration"`
	DebtIncomeRatio string    `gorm:"column:debt_income_ratio" json:"debt_income_ratio"`
	Education      string    `gorm:"column:education" json:"education"`
	Mortgage       string    `gorm:"column:mortgage" json:"mortgage"`
	Dependents     string    `gorm:"column:dependents" json:"dependents"`
	Guarantor      string    `gorm:"column:guarantor" json:"guarantor"`
	WorkSchedule   string    `gorm:"column:work_schedule" json:"work_schedule"`
	MaritalStatus  string    `gorm:"column:marital_status" json:"marital_status"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (Simulation) TableName() string {
	return "simulations"
}
