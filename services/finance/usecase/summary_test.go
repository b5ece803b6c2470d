package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func tx(txType string, amount float64, status string, txDate time.Time) models.Transaction {
	return models.Transaction{
		ID:              uuid.New(),
		Description:     "test",
		Amount:          amount,
		Type:            txType,
		Status:          status,
		TransactionDate: txDate,
	}
}

func TestSummarize_EmptyInputs(t *testing.T) {
	summary := Summarize(nil, nil, date(2026, time.March, 15))

	assert.Zero(t, summary.TotalIncomeReceived)
	assert.Zero(t, summary.FutureIncome)
	assert.Zero(t, summary.FutureExpenses)
	assert.Zero(t, summary.IncomeThisMonth)
	assert.Zero(t, summary.AmountDueThisMonth)
	assert.Zero(t, summary.MonthResult)
	assert.Empty(t, summary.CategoriesAllTime)
	assert.Empty(t, summary.CategoriesThisMonth)
	assert.Empty(t, summary.MonthlySeries)
}

func TestSummarize_SpecExample(t *testing.T) {
	// income 1000 paid this month, expense 300 paid this month,
	// expense 200 pending next month
	refMonth := date(2026, time.March, 1)
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 1000, models.TransactionStatusPaid, date(2026, time.March, 10)),
		tx(models.TransactionTypeExpense, 300, models.TransactionStatusPaid, date(2026, time.March, 12)),
		tx(models.TransactionTypeExpense, 200, models.TransactionStatusPending, date(2026, time.April, 5)),
	}

	summary := Summarize(transactions, nil, refMonth)

	assert.Equal(t, 1000.0, summary.IncomeThisMonth)
	assert.Equal(t, 300.0, summary.AmountDueThisMonth)
	assert.Equal(t, 200.0, summary.FutureExpenses)
	assert.Equal(t, 700.0, summary.MonthResult)
	assert.Equal(t, 1000.0, summary.TotalIncomeReceived)
}

func TestSummarize_InstallmentParentsExcluded(t *testing.T) {
	refMonth := date(2026, time.March, 1)
	parentID := uuid.New()

	parent := tx(models.TransactionTypeExpense, 900, models.TransactionStatusPaid, date(2026, time.March, 1))
	parent.ID = parentID
	parent.InstallmentTotal = 3
	parent.IsInstallmentParent = true

	transactions := []models.Transaction{parent}
	for i := 1; i <= 3; i++ {
		installment := tx(models.TransactionTypeExpense, 300, models.TransactionStatusPaid, date(2026, time.March, 1).AddDate(0, i-1, 0))
		installment.IsInstallment = true
		installment.InstallmentNumber = i
		installment.InstallmentTotal = 3
		installment.ParentID = &parentID
		transactions = append(transactions, installment)
	}

	summary := Summarize(transactions, nil, refMonth)

	// only the March installment counts this month; the parent's 900 never appears
	assert.Equal(t, 300.0, summary.AmountDueThisMonth)
	assert.Equal(t, 600.0, summary.FutureExpenses)

	var seriesTotal float64
	for _, point := range summary.MonthlySeries {
		seriesTotal += point.Expense
	}
	assert.Equal(t, 900.0, seriesTotal)
}

func TestSummarize_MonthResultIdentity(t *testing.T) {
	refMonths := []time.Time{
		date(2026, time.January, 1),
		date(2026, time.March, 1),
		date(2026, time.December, 1),
	}
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 1500, models.TransactionStatusPending, date(2026, time.March, 3)),
		tx(models.TransactionTypeExpense, 400, models.TransactionStatusPaid, date(2026, time.March, 20)),
		tx(models.TransactionTypeIncome, 250, models.TransactionStatusPaid, date(2026, time.June, 1)),
	}
	teamExpenses := []models.TeamExpense{
		{ID: uuid.New(), Description: "tool", Amount: 99, Date: date(2026, time.March, 5), Status: models.TransactionStatusPending},
	}

	for _, refMonth := range refMonths {
		summary := Summarize(transactions, teamExpenses, refMonth)
		assert.Equal(t, summary.IncomeThisMonth-summary.AmountDueThisMonth, summary.MonthResult,
			"month result identity must hold for %s", refMonth.Format("2006-01"))
	}
}

func TestSummarize_TeamExpensesOnlyCountTowardAmountDue(t *testing.T) {
	refMonth := date(2026, time.March, 1)
	teamExpenses := []models.TeamExpense{
		{ID: uuid.New(), Amount: 120, Date: date(2026, time.March, 10), Status: models.TransactionStatusPending},
		{ID: uuid.New(), Amount: 80, Date: date(2026, time.April, 10), Status: models.TransactionStatusPending},
	}

	summary := Summarize(nil, teamExpenses, refMonth)

	assert.Equal(t, 120.0, summary.AmountDueThisMonth)
	assert.Equal(t, -120.0, summary.MonthResult)
	// team expenses never reach future projections or category breakdowns
	assert.Zero(t, summary.FutureExpenses)
	assert.Empty(t, summary.CategoriesAllTime)
}

func TestSummarize_FutureIsRelativeToBrowsedMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 500, models.TransactionStatusPending, date(2026, time.May, 1)),
	}

	// browsing March: May income is future
	marchView := Summarize(transactions, nil, date(2026, time.March, 1))
	assert.Equal(t, 500.0, marchView.FutureIncome)

	// browsing May: same row is in-month, not future
	mayView := Summarize(transactions, nil, date(2026, time.May, 1))
	assert.Zero(t, mayView.FutureIncome)
	assert.Equal(t, 500.0, mayView.IncomeThisMonth)
}

func TestSummarize_CategoryBreakdowns(t *testing.T) {
	refMonth := date(2026, time.March, 1)

	tagged := tx(models.TransactionTypeExpense, 200, models.TransactionStatusPaid, date(2026, time.March, 2))
	tagged.CostCenterName = "Marketing"

	untagged := tx(models.TransactionTypeIncome, 900, models.TransactionStatusPaid, date(2026, time.March, 4))

	pendingTagged := tx(models.TransactionTypeExpense, 50, models.TransactionStatusPending, date(2026, time.March, 6))
	pendingTagged.CostCenterName = "Marketing"

	summary := Summarize([]models.Transaction{tagged, untagged, pendingTagged}, nil, refMonth)

	require.Len(t, summary.CategoriesAllTime, 2)
	assert.Equal(t, "Marketing", summary.CategoriesAllTime[0].Name)
	assert.Equal(t, 250.0, summary.CategoriesAllTime[0].Expense)
	assert.Equal(t, FallbackCategory, summary.CategoriesAllTime[1].Name)
	assert.Equal(t, 900.0, summary.CategoriesAllTime[1].Income)

	// this-month breakdown is paid-only: the pending 50 is absent
	require.Len(t, summary.CategoriesThisMonth, 2)
	assert.Equal(t, 200.0, summary.CategoriesThisMonth[0].Expense)
}

func TestSummarize_MonthlySeriesSortedAscending(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 100, models.TransactionStatusPaid, date(2026, time.May, 1)),
		tx(models.TransactionTypeIncome, 100, models.TransactionStatusPaid, date(2025, time.December, 1)),
		tx(models.TransactionTypeExpense, 40, models.TransactionStatusPaid, date(2026, time.January, 15)),
		tx(models.TransactionTypeIncome, 60, models.TransactionStatusPending, date(2026, time.February, 1)), // pending: excluded
	}

	summary := Summarize(transactions, nil, date(2026, time.March, 1))

	require.Len(t, summary.MonthlySeries, 3)
	assert.Equal(t, "2025-12", summary.MonthlySeries[0].Month)
	assert.Equal(t, "2026-01", summary.MonthlySeries[1].Month)
	assert.Equal(t, "2026-05", summary.MonthlySeries[2].Month)
	assert.Equal(t, 40.0, summary.MonthlySeries[1].Expense)
}

func TestSummarize_Deterministic(t *testing.T) {
	transactions := []models.Transaction{
		tx(models.TransactionTypeIncome, 123.45, models.TransactionStatusPaid, date(2026, time.March, 2)),
		tx(models.TransactionTypeExpense, 67.89, models.TransactionStatusPending, date(2026, time.March, 3)),
	}

	first := Summarize(transactions, nil, date(2026, time.March, 1))
	second := Summarize(transactions, nil, date(2026, time.March, 1))

	assert.Equal(t, first, second)
}
