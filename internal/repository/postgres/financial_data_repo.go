package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

const (
	selectProfileSQL = `
		SELECT monthly_income, monthly_expense, emergency_fund, monthly_emi, monthly_saving,
		       life_cover, health_cover, retirement_corpus, age, equity_percent,
		       created_at, updated_at
		FROM financial_profiles
		WHERE user_id = $1`

	selectHistorySQL = `
		SELECT recorded_at, monthly_income, monthly_expense, monthly_saving, monthly_emi,
		       emergency_fund, savings_rate
		FROM financial_history
		WHERE user_id = $1
		ORDER BY recorded_at, id`

	selectMilestonesSQL = `
		SELECT type, name, description, unlocked_at
		FROM financial_milestones
		WHERE user_id = $1
		ORDER BY unlocked_at, type`

	selectBadgesSQL = `
		SELECT name, description, earned_at
		FROM financial_badges
		WHERE user_id = $1
		ORDER BY earned_at, name`

	insertEmptyProfileSQL = `
		INSERT INTO financial_profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`

	// The upsert holds the profile row lock until commit, which serializes
	// concurrent snapshots for the same user.
	upsertProfileSQL = `
		INSERT INTO financial_profiles (
			user_id, monthly_income, monthly_expense, emergency_fund, monthly_emi, monthly_saving,
			life_cover, health_cover, retirement_corpus, age, equity_percent
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			monthly_income = EXCLUDED.monthly_income,
			monthly_expense = EXCLUDED.monthly_expense,
			emergency_fund = EXCLUDED.emergency_fund,
			monthly_emi = EXCLUDED.monthly_emi,
			monthly_saving = EXCLUDED.monthly_saving,
			life_cover = EXCLUDED.life_cover,
			health_cover = EXCLUDED.health_cover,
			retirement_corpus = EXCLUDED.retirement_corpus,
			age = EXCLUDED.age,
			equity_percent = EXCLUDED.equity_percent,
			updated_at = now()`

	insertHistorySQL = `
		INSERT INTO financial_history (
			user_id, recorded_at, monthly_income, monthly_expense, monthly_saving, monthly_emi,
			emergency_fund, savings_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	trimHistorySQL = `
		DELETE FROM financial_history
		WHERE user_id = $1
		  AND id NOT IN (
			SELECT id FROM financial_history
			WHERE user_id = $1
			ORDER BY recorded_at DESC, id DESC
			LIMIT $2
		  )`

	insertMilestoneSQL = `
		INSERT INTO financial_milestones (user_id, type, name, description, unlocked_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, type) DO NOTHING`

	insertBadgeSQL = `
		INSERT INTO financial_badges (user_id, name, description, earned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, name) DO NOTHING`
)

// FinancialDataRepository implements domain.FinancialDataRepository using PostgreSQL
type FinancialDataRepository struct {
	db DB
}

// NewFinancialDataRepository creates a new FinancialDataRepository
func NewFinancialDataRepository(db DB) *FinancialDataRepository {
	return &FinancialDataRepository{db: db}
}

// GetByUserID loads the profile together with its history, milestones and badges
func (r *FinancialDataRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.FinancialData, error) {
	data := &domain.FinancialData{UserID: userID}

	var money [10]decimal.Decimal
	dest := make([]any, 0, len(money)+2)
	for i := range money {
		dest = append(dest, &money[i])
	}
	dest = append(dest, &data.CreatedAt, &data.UpdatedAt)

	if err := r.db.QueryRow(ctx, selectProfileSQL, userID).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFinancialDataNotFound
		}
		return nil, fmt.Errorf("select profile: %w", err)
	}
	data.Profile = domain.FinancialProfile{
		MonthlyIncome:    decimalToNumber(money[0]),
		MonthlyExpense:   decimalToNumber(money[1]),
		EmergencyFund:    decimalToNumber(money[2]),
		MonthlyEMI:       decimalToNumber(money[3]),
		MonthlySaving:    decimalToNumber(money[4]),
		LifeCover:        decimalToNumber(money[5]),
		HealthCover:      decimalToNumber(money[6]),
		RetirementCorpus: decimalToNumber(money[7]),
		Age:              decimalToNumber(money[8]),
		EquityPercent:    decimalToNumber(money[9]),
	}

	var err error
	if data.History, err = r.history(ctx, userID); err != nil {
		return nil, err
	}
	if data.Milestones, err = r.milestones(ctx, userID); err != nil {
		return nil, err
	}
	if data.Badges, err = r.badges(ctx, userID); err != nil {
		return nil, err
	}
	return data, nil
}

// Create inserts an empty profile for the user if none exists and returns the stored data
func (r *FinancialDataRepository) Create(ctx context.Context, userID uuid.UUID) (*domain.FinancialData, error) {
	if _, err := r.db.Exec(ctx, insertEmptyProfileSQL, userID); err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return r.GetByUserID(ctx, userID)
}

// SaveSnapshot upserts the profile, appends entry and trims history to
// domain.MaxHistoryEntries in one transaction
func (r *FinancialDataRepository) SaveSnapshot(ctx context.Context, userID uuid.UUID, profile domain.FinancialProfile, entry domain.HistoryEntry) (*domain.FinancialData, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p := profile.Normalize()
	_, err = tx.Exec(ctx, upsertProfileSQL,
		userID,
		numberToDecimal(p.MonthlyIncome),
		numberToDecimal(p.MonthlyExpense),
		numberToDecimal(p.EmergencyFund),
		numberToDecimal(p.MonthlyEMI),
		numberToDecimal(p.MonthlySaving),
		numberToDecimal(p.LifeCover),
		numberToDecimal(p.HealthCover),
		numberToDecimal(p.RetirementCorpus),
		numberToDecimal(p.Age),
		numberToDecimal(p.EquityPercent),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	_, err = tx.Exec(ctx, insertHistorySQL,
		userID,
		entry.Date,
		floatToDecimal(entry.MonthlyIncome),
		floatToDecimal(entry.MonthlyExpense),
		floatToDecimal(entry.MonthlySaving),
		floatToDecimal(entry.MonthlyEMI),
		floatToDecimal(entry.EmergencyFund),
		floatToDecimal(entry.SavingsRate).Round(4),
	)
	if err != nil {
		return nil, fmt.Errorf("insert history: %w", err)
	}

	if _, err := tx.Exec(ctx, trimHistorySQL, userID, domain.MaxHistoryEntries); err != nil {
		return nil, fmt.Errorf("trim history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}
	return r.GetByUserID(ctx, userID)
}

// AddMilestones stores milestones; types the user already has are skipped
func (r *FinancialDataRepository) AddMilestones(ctx context.Context, userID uuid.UUID, milestones []domain.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range milestones {
		if _, err := tx.Exec(ctx, insertMilestoneSQL, userID, string(m.Type), m.Name, m.Description, m.UnlockedAt); err != nil {
			return fmt.Errorf("insert milestone %s: %w", m.Type, err)
		}
	}
	return tx.Commit(ctx)
}

// AddBadges stores badges; names the user already has are skipped
func (r *FinancialDataRepository) AddBadges(ctx context.Context, userID uuid.UUID, badges []domain.Badge) error {
	if len(badges) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, b := range badges {
		if _, err := tx.Exec(ctx, insertBadgeSQL, userID, b.Name, b.Description, b.EarnedAt); err != nil {
			return fmt.Errorf("insert badge %s: %w", b.Name, err)
		}
	}
	return tx.Commit(ctx)
}

func (r *FinancialDataRepository) history(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, selectHistorySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer rows.Close()

	history := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			recordedAt                                      time.Time
			income, expense, saving, emi, fund, savingsRate decimal.Decimal
		)
		if err := rows.Scan(&recordedAt, &income, &expense, &saving, &emi, &fund, &savingsRate); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		history = append(history, domain.HistoryEntry{
			Date:           recordedAt,
			MonthlyIncome:  income.InexactFloat64(),
			MonthlyExpense: expense.InexactFloat64(),
			MonthlySaving:  saving.InexactFloat64(),
			MonthlyEMI:     emi.InexactFloat64(),
			EmergencyFund:  fund.InexactFloat64(),
			SavingsRate:    savingsRate.InexactFloat64(),
		})
	}
	return history, rows.Err()
}

func (r *FinancialDataRepository) milestones(ctx context.Context, userID uuid.UUID) ([]domain.Milestone, error) {
	rows, err := r.db.Query(ctx, selectMilestonesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select milestones: %w", err)
	}
	defer rows.Close()

	milestones := []domain.Milestone{}
	for rows.Next() {
		var (
			m         domain.Milestone
			milestone string
		)
		if err := rows.Scan(&milestone, &m.Name, &m.Description, &m.UnlockedAt); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		m.Type = domain.MilestoneType(milestone)
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *FinancialDataRepository) badges(ctx context.Context, userID uuid.UUID) ([]domain.Badge, error) {
	rows, err := r.db.Query(ctx, selectBadgesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select badges: %w", err)
	}
	defer rows.Close()

	badges := []domain.Badge{}
	for rows.Next() {
		var b domain.Badge
		if err := rows.Scan(&b.Name, &b.Description, &b.EarnedAt); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}

// Money columns are NUMERIC; the engine works in float64.
func numberToDecimal(n domain.Number) decimal.Decimal {
	return floatToDecimal(n.Float()).Round(2)
}

func floatToDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func decimalToNumber(d decimal.Decimal) domain.Number {
	return domain.Number(d.InexactFloat64())
}
