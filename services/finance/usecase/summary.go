package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

// FallbackCategory labels transactions with no cost center in breakdowns
const FallbackCategory = "Sem centro de custo"

// GetSummary fetches the user's rows and runs the aggregator over them
func (uc *FinanceUC) GetSummary(ctx context.Context, userID uuid.UUID, refMonth time.Time) (*models.FinancialSummary, error) {
	txs, err := uc.financeRepo.ListTransactions(ctx, userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	expenses, err := uc.financeRepo.ListTeamExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team expenses: %w", err)
	}

	return Summarize(txs, expenses, refMonth), nil
}

// Summarize derives the dashboard totals from a user's transactions and
// ancillary expenses for a reference month. Pure and deterministic: no side
// effects, identical inputs give identical outputs.
//
// "Future" is measured against the browsed month's last day, not today: the
// dashboard reads these numbers while navigating month by month.
func Summarize(transactions []models.Transaction, teamExpenses []models.TeamExpense, refMonth time.Time) *models.FinancialSummary {
	monthStart := time.Date(refMonth.Year(), refMonth.Month(), 1, 0, 0, 0, 0, refMonth.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	inMonth := func(date time.Time) bool {
		return !date.Before(monthStart) && date.Before(nextMonth)
	}
	afterMonth := func(date time.Time) bool {
		return !date.Before(nextMonth)
	}

	summary := &models.FinancialSummary{
		CategoriesAllTime:   []models.CategoryTotal{},
		CategoriesThisMonth: []models.CategoryTotal{},
		MonthlySeries:       []models.MonthlyPoint{},
	}

	categoriesAllTime := map[string]*models.CategoryTotal{}
	categoriesThisMonth := map[string]*models.CategoryTotal{}
	monthly := map[string]*models.MonthlyPoint{}

	for _, tx := range transactions {
		// Installment parents are display placeholders and would double count
		if tx.IsInstallmentParent {
			continue
		}

		isIncome := tx.Type == models.TransactionTypeIncome
		isPaid := tx.Status == models.TransactionStatusPaid

		if isIncome && isPaid {
			summary.TotalIncomeReceived += tx.Amount
		}

		if afterMonth(tx.TransactionDate) {
			if isIncome {
				summary.FutureIncome += tx.Amount
			} else {
				summary.FutureExpenses += tx.Amount
			}
		}

		if inMonth(tx.TransactionDate) {
			if isIncome {
				summary.IncomeThisMonth += tx.Amount
			} else {
				summary.AmountDueThisMonth += tx.Amount
			}
		}

		name := tx.CostCenterName
		if name == "" {
			name = FallbackCategory
		}

		accumulate(categoriesAllTime, name, tx.Amount, isIncome)
		if inMonth(tx.TransactionDate) && isPaid {
			accumulate(categoriesThisMonth, name, tx.Amount, isIncome)
		}

		if isPaid {
			key := tx.TransactionDate.Format("2006-01")
			point, ok := monthly[key]
			if !ok {
				point = &models.MonthlyPoint{Month: key}
				monthly[key] = point
			}
			if isIncome {
				point.Income += tx.Amount
			} else {
				point.Expense += tx.Amount
			}
		}
	}

	for _, expense := range teamExpenses {
		if inMonth(expense.Date) {
			summary.AmountDueThisMonth += expense.Amount
		}
	}

	summary.MonthResult = summary.IncomeThisMonth - summary.AmountDueThisMonth

	summary.CategoriesAllTime = sortedCategories(categoriesAllTime)
	summary.CategoriesThisMonth = sortedCategories(categoriesThisMonth)

	for _, point := range monthly {
		summary.MonthlySeries = append(summary.MonthlySeries, *point)
	}
	sort.Slice(summary.MonthlySeries, func(i, j int) bool {
		return summary.MonthlySeries[i].Month < summary.MonthlySeries[j].Month
	})

	return summary
}

func accumulate(categories map[string]*models.CategoryTotal, name string, amount float64, isIncome bool) {
	total, ok := categories[name]
	if !ok {
		total = &models.CategoryTotal{Name: name}
		categories[name] = total
	}
	if isIncome {
		total.Income += amount
	} else {
		total.Expense += amount
	}
}

func sortedCategories(categories map[string]*models.CategoryTotal) []models.CategoryTotal {
	out := make([]models.CategoryTotal, 0, len(categories))
	for _, total := range categories {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
