package aggregate

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Series holds three parallel lists for a category chart.
type Series struct {
	Labels []string          `json:"labels" example:"Groceries"`
	Values []decimal.Decimal `json:"values" example:"100"`
	Colors []string          `json:"colors" example:"#84CC16"`
}

// CategoryTotal is the expense sum of one category.
type CategoryTotal struct {
	CategoryID uuid.UUID       `json:"categoryId"` // uuid.Nil for unknown categories
	Name       string          `json:"name" example:"Groceries"`
	Color      string          `json:"color" example:"#84CC16"`
	Amount     decimal.Decimal `json:"amount" example:"100"`
}

// Comparison holds income and expense totals per calendar month of a year.
type Comparison struct {
	Year    int                 `json:"year" example:"2024"`
	Labels  [12]string          `json:"labels"`
	Income  [12]decimal.Decimal `json:"income"`
	Expense [12]decimal.Decimal `json:"expense"`
}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// categoryTotals groups the expenses by category in order of the first
// transaction of each category. Unknown categories form one group.
func (s Snapshot) categoryTotals(transactions []models.Transaction) []CategoryTotal {
	totals := []CategoryTotal{}
	index := make(map[uuid.UUID]int)

	for _, t := range transactions {
		if t.Type != models.TransactionTypeExpense {
			continue
		}

		key := s.groupKey(t.CategoryID)
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, CategoryTotal{
				CategoryID: key,
				Name:       s.CategoryName(key),
				Color:      s.CategoryColor(key),
				Amount:     decimal.Zero,
			})
		}

		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}

	return totals
}

// CategorySeries returns the expenses in the range grouped by category.
//
// Entries are in order of the first transaction of each category. This
// order depends on the stored order of transactions and is not sorted by
// name or amount.
func (s Snapshot) CategorySeries(r types.DateRange) Series {
	series := Series{
		Labels: []string{},
		Values: []decimal.Decimal{},
		Colors: []string{},
	}

	for _, total := range s.categoryTotals(FilterByDateRange(s.transactions, r)) {
		series.Labels = append(series.Labels, total.Name)
		series.Values = append(series.Values, total.Amount)
		series.Colors = append(series.Colors, total.Color)
	}

	return series
}

// MonthlyComparison sums income and expenses for every month of the year.
// Every transaction that is not income counts as expense.
func (s Snapshot) MonthlyComparison(year int) Comparison {
	c := Comparison{Year: year, Labels: monthLabels}
	for i := range c.Income {
		c.Income[i] = decimal.Zero
		c.Expense[i] = decimal.Zero
	}

	for _, t := range s.transactions {
		month := types.MonthOf(t.Date)
		if month.Year() != year {
			continue
		}

		i := month.Index()
		if t.Type == models.TransactionTypeIncome {
			c.Income[i] = c.Income[i].Add(t.Amount)
		} else {
			c.Expense[i] = c.Expense[i].Add(t.Amount)
		}
	}

	return c
}

// TopCategories returns up to n categories with the highest expenses in
// the month, highest first.
//
// Categories with equal amounts keep the order of their first transaction.
// Callers must not rely on that order.
func (s Snapshot) TopCategories(month types.Month, n int) []CategoryTotal {
	totals := s.categoryTotals(s.MonthTransactions(month))
	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	if n < 0 {
		n = 0
	}

	if len(totals) > n {
		totals = totals[:n]
	}

	return totals
}
