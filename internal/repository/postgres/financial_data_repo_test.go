package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

var profileColumns = []string{
	"monthly_income", "monthly_expense", "emergency_fund", "monthly_emi", "monthly_saving",
	"life_cover", "health_cover", "retirement_corpus", "age", "equity_percent",
	"created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*FinancialDataRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewFinancialDataRepository(mock), mock
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func expectLoad(mock pgxmock.PgxPoolIface, userID uuid.UUID, at time.Time) {
	mock.ExpectQuery("FROM financial_profiles").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(dec(75000), dec(45000), dec(150000), dec(18000), dec(12000),
				dec(9000000), dec(5), dec(2500000), dec(35), dec(65), at, at))

	mock.ExpectQuery("FROM financial_history").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"recorded_at", "monthly_income", "monthly_expense", "monthly_saving", "monthly_emi", "emergency_fund", "savings_rate",
		}).AddRow(at, dec(75000), dec(45000), dec(12000), dec(18000), dec(150000), dec(16)))

	mock.ExpectQuery("FROM financial_milestones").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"type", "name", "description", "unlocked_at"}).
			AddRow("low_debt", "Debt Free Warrior", "EMI under 30% of income", at))

	mock.ExpectQuery("FROM financial_badges").
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"name", "description", "earned_at"}).
			AddRow("Debt Slayer", "Low debt burden", at))
}

func TestFinancialDataRepository_GetByUserID(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	expectLoad(mock, userID, at)

	data, err := repo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, data.UserID)
	assert.Equal(t, domain.Number(75000), data.Profile.MonthlyIncome)
	assert.Equal(t, domain.Number(35), data.Profile.Age)
	require.Len(t, data.History, 1)
	assert.Equal(t, 16.0, data.History[0].SavingsRate)
	require.Len(t, data.Milestones, 1)
	assert.Equal(t, domain.MilestoneLowDebt, data.Milestones[0].Type)
	require.Len(t, data.Badges, 1)
	assert.Equal(t, "Debt Slayer", data.Badges[0].Name)
	assert.Equal(t, at, data.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_GetByUserID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("FROM financial_profiles").
		WithArgs(userID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUserID(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrFinancialDataNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	at := time.Now().UTC()

	mock.ExpectExec("INSERT INTO financial_profiles").
		WithArgs(userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	expectLoad(mock, userID, at)

	data, err := repo.Create(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, data.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_SaveSnapshot(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	profile := domain.FinancialProfile{MonthlyIncome: 75000, MonthlySaving: 12000}
	entry := domain.NewHistoryEntry(profile, at)

	upsertArgs := []any{userID}
	for i := 0; i < 10; i++ {
		upsertArgs = append(upsertArgs, pgxmock.AnyArg())
	}

	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs(upsertArgs...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO financial_history").
		WithArgs(userID, at, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM financial_history").
		WithArgs(userID, domain.MaxHistoryEntries).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()
	expectLoad(mock, userID, at)

	data, err := repo.SaveSnapshot(context.Background(), userID, profile, entry)
	require.NoError(t, err)
	assert.Equal(t, userID, data.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_SaveSnapshot_RollsBackOnError(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	profile := domain.FinancialProfile{MonthlyIncome: 75000}

	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(user_id\\) DO UPDATE").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO financial_history").
		WillReturnError(fmt.Errorf("disk full"))
	mock.ExpectRollback()

	_, err := repo.SaveSnapshot(context.Background(), userID, profile, domain.NewHistoryEntry(profile, time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert history")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_AddMilestones(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	at := time.Now().UTC()
	milestones := []domain.Milestone{
		{Type: domain.MilestoneLowDebt, Name: "Debt Free Warrior", Description: "EMI under 30% of income", UnlockedAt: at},
		{Type: domain.MilestoneInsuranceAdequate, Name: "Protected", Description: "Adequate life insurance coverage", UnlockedAt: at},
	}

	mock.ExpectBegin()
	for _, m := range milestones {
		mock.ExpectExec("INSERT INTO financial_milestones").
			WithArgs(userID, string(m.Type), m.Name, m.Description, at).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.AddMilestones(context.Background(), userID, milestones))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_AddBadges(t *testing.T) {
	repo, mock := newMockRepo(t)
	userID := uuid.New()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO financial_badges").
		WithArgs(userID, "Debt Slayer", "Low debt burden", at).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectCommit()

	err := repo.AddBadges(context.Background(), userID, []domain.Badge{{Name: "Debt Slayer", Description: "Low debt burden", EarnedAt: at}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFinancialDataRepository_AddNothing(t *testing.T) {
	repo, mock := newMockRepo(t)

	assert.NoError(t, repo.AddMilestones(context.Background(), uuid.New(), nil))
	assert.NoError(t, repo.AddBadges(context.Background(), uuid.New(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS financial_profiles").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNumberToDecimal(t *testing.T) {
	assert.Equal(t, "1234.57", numberToDecimal(1234.567).String())
	assert.Equal(t, domain.Number(12.5), decimalToNumber(decimal.RequireFromString("12.5")))
}
