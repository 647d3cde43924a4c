package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/types"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// FilterByDateRange returns the transactions dated within the range, both
// ends included, in their original order.
//
// The full timestamp is compared, so a range ending at 00:00 on a day
// excludes transactions later on that day.
func FilterByDateRange(transactions []models.Transaction, r types.DateRange) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if r.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// UsagePercentage returns spent as percentage of allocated, rounded to two
// decimal places and capped at 100. It is zero when nothing is allocated.
func UsagePercentage(spent, allocated decimal.Decimal) decimal.Decimal {
	if !allocated.IsPositive() {
		return decimal.Zero
	}

	return decimal.Min(hundred, spent.Div(allocated).Mul(hundred).Round(2))
}

func sum(transactions []models.Transaction, keep func(models.Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if keep(t) {
			total = total.Add(t.Amount)
		}
	}

	return total
}

func ofType(kind models.TransactionType) func(models.Transaction) bool {
	return func(t models.Transaction) bool { return t.Type == kind }
}

// TotalIncome sums all income in the range.
func (s Snapshot) TotalIncome(r types.DateRange) decimal.Decimal {
	return sum(FilterByDateRange(s.transactions, r), ofType(models.TransactionTypeIncome))
}

// TotalExpense sums all expenses in the range.
func (s Snapshot) TotalExpense(r types.DateRange) decimal.Decimal {
	return sum(FilterByDateRange(s.transactions, r), ofType(models.TransactionTypeExpense))
}

// MonthTransactions returns the transactions of the month in their original order.
func (s Snapshot) MonthTransactions(month types.Month) []models.Transaction {
	return FilterByDateRange(s.transactions, month.Range())
}

// Recent returns up to limit transactions, newest first. Transactions with
// the same date keep their original order.
func (s Snapshot) Recent(limit int) []models.Transaction {
	sorted := slices.Clone(s.transactions)
	slices.SortStableFunc(sorted, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}

// Summary is the overview for a date range.
//
// Budgeted sums the budgets of every month the range touches, Usage is the
// expense as percentage of Budgeted, at most 100.
type Summary struct {
	Range    types.DateRange `json:"range"`
	Income   decimal.Decimal `json:"income" example:"2500"`
	Expense  decimal.Decimal `json:"expense" example:"1320.5"`
	Balance  decimal.Decimal `json:"balance" example:"1179.5"`
	Budgeted decimal.Decimal `json:"budgeted" example:"1500"`
	Usage    decimal.Decimal `json:"usage" example:"88.03"`
}

// Summary returns the income, expense and budget figures for the range.
func (s Snapshot) Summary(r types.DateRange) Summary {
	income := s.TotalIncome(r)
	expense := s.TotalExpense(r)

	months := r.Months()
	budgeted := decimal.Zero
	for _, b := range s.budgets {
		if slices.ContainsFunc(months, func(m types.Month) bool { return m.Equal(b.Period()) }) {
			budgeted = budgeted.Add(b.Amount)
		}
	}

	return Summary{
		Range:    r,
		Income:   income,
		Expense:  expense,
		Balance:  income.Sub(expense),
		Budgeted: budgeted,
		Usage:    UsagePercentage(expense, budgeted),
	}
}
