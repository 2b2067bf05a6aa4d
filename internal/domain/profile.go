package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Engine-wide constants
const (
	// RetirementAge is the assumed retirement age for all readiness math
	RetirementAge = 58
	// DefaultAge is used when a profile carries no age
	DefaultAge = 30
	// MaxHistoryEntries is how many snapshots are retained per user
	MaxHistoryEntries = 12
	// RupeesPerLakh converts health cover between rupees and lakhs
	RupeesPerLakh = 100000
)

// FinancialProfile is the raw user input the risk engine scores.
// HealthCover is expressed in lakhs; every other amount is in rupees.
type FinancialProfile struct {
	MonthlyIncome    Number `json:"monthlyIncome" yaml:"monthlyIncome"`
	MonthlyExpense   Number `json:"monthlyExpense" yaml:"monthlyExpense"`
	EmergencyFund    Number `json:"emergencyFund" yaml:"emergencyFund"`
	MonthlyEMI       Number `json:"monthlyEMI" yaml:"monthlyEMI"`
	MonthlySaving    Number `json:"monthlySaving" yaml:"monthlySaving"`
	LifeCover        Number `json:"lifeCover" yaml:"lifeCover"`
	HealthCover      Number `json:"healthCover" yaml:"healthCover"`
	RetirementCorpus Number `json:"retirementCorpus" yaml:"retirementCorpus"`
	Age              Number `json:"age" yaml:"age"`
	EquityPercent    Number `json:"equityPercent" yaml:"equityPercent"`
}

// Normalize returns a copy with non-finite values zeroed and a missing age
// replaced by DefaultAge.
func (p FinancialProfile) Normalize() FinancialProfile {
	out := FinancialProfile{
		MonthlyIncome:    Number(finite(float64(p.MonthlyIncome))),
		MonthlyExpense:   Number(finite(float64(p.MonthlyExpense))),
		EmergencyFund:    Number(finite(float64(p.EmergencyFund))),
		MonthlyEMI:       Number(finite(float64(p.MonthlyEMI))),
		MonthlySaving:    Number(finite(float64(p.MonthlySaving))),
		LifeCover:        Number(finite(float64(p.LifeCover))),
		HealthCover:      Number(finite(float64(p.HealthCover))),
		RetirementCorpus: Number(finite(float64(p.RetirementCorpus))),
		Age:              Number(finite(float64(p.Age))),
		EquityPercent:    Number(finite(float64(p.EquityPercent))),
	}
	if out.Age == 0 {
		out.Age = DefaultAge
	}
	return out
}

// SavingsRate returns monthly saving as a percentage of income, 0 without income
func (p FinancialProfile) SavingsRate() float64 {
	if p.MonthlyIncome <= 0 {
		return 0
	}
	return float64(p.MonthlySaving) / float64(p.MonthlyIncome) * 100
}

// HistoryEntry is a dated snapshot used for behavioral trend detection
type HistoryEntry struct {
	Date           time.Time `json:"date"`
	MonthlyIncome  float64   `json:"monthlyIncome"`
	MonthlyExpense float64   `json:"monthlyExpense"`
	MonthlySaving  float64   `json:"monthlySaving"`
	MonthlyEMI     float64   `json:"monthlyEMI"`
	EmergencyFund  float64   `json:"emergencyFund"`
	SavingsRate    float64   `json:"savingsRate"`
}

// NewHistoryEntry snapshots the history-relevant fields of a profile
func NewHistoryEntry(p FinancialProfile, at time.Time) HistoryEntry {
	p = p.Normalize()
	return HistoryEntry{
		Date:           at,
		MonthlyIncome:  float64(p.MonthlyIncome),
		MonthlyExpense: float64(p.MonthlyExpense),
		MonthlySaving:  float64(p.MonthlySaving),
		MonthlyEMI:     float64(p.MonthlyEMI),
		EmergencyFund:  float64(p.EmergencyFund),
		SavingsRate:    p.SavingsRate(),
	}
}

// AppendHistory appends entry and evicts the oldest entries beyond MaxHistoryEntries.
// The input slice is not modified.
func AppendHistory(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(history)+1)
	out = append(out, history...)
	out = append(out, entry)
	if len(out) > MaxHistoryEntries {
		out = out[len(out)-MaxHistoryEntries:]
	}
	return out
}

// FinancialData is the persisted aggregate for one user
type FinancialData struct {
	UserID     uuid.UUID        `json:"userId"`
	Profile    FinancialProfile `json:"profile"`
	History    []HistoryEntry   `json:"history"`
	Milestones []Milestone      `json:"milestones"`
	Badges     []Badge          `json:"badges"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// FinancialDataRepository defines the interface for financial data persistence
type FinancialDataRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*FinancialData, error)
	Create(ctx context.Context, userID uuid.UUID) (*FinancialData, error)
	// SaveSnapshot upserts the profile and appends entry to the history,
	// keeping at most MaxHistoryEntries.
	SaveSnapshot(ctx context.Context, userID uuid.UUID, profile FinancialProfile, entry HistoryEntry) (*FinancialData, error)
	// AddMilestones stores milestones, ignoring types the user already has
	AddMilestones(ctx context.Context, userID uuid.UUID, milestones []Milestone) error
	// AddBadges stores badges, ignoring names the user already has
	AddBadges(ctx context.Context, userID uuid.UUID, badges []Badge) error
}
