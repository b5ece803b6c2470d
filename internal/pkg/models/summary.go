package models

// CategoryTotal holds income and expense sums for one cost-center name
type CategoryTotal struct {
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyPoint is one month of the paid-transaction time series
type MonthlyPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// FinancialSummary is the fixed record of derived values the dashboard renders
type FinancialSummary struct {
	TotalIncomeReceived float64 `json:"total_income_received"`
	FutureIncome        float64 `json:"future_income"`
	FutureExpenses      float64 `json:"future_expenses"`
	IncomeThisMonth     float64 `json:"income_this_month"`
	AmountDueThisMonth  float64 `json:"amount_due_this_month"`
	MonthResult         float64 `json:"month_result"`

	CategoriesAllTime   []CategoryTotal `json:"categories_all_time"`
	CategoriesThisMonth []CategoryTotal `json:"categories_this_month"`
	MonthlySeries       []MonthlyPoint  `json:"monthly_series"`
}
