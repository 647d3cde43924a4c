package aggregate

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/types"
)

// UsageLevel classifies how much of a budget is used.
type UsageLevel string

const (
	UsageLow      UsageLevel = "low"      // below 60 %
	UsageHigh     UsageLevel = "high"     // below 90 %
	UsageCritical UsageLevel = "critical" // 90 % and above
)

var (
	highThreshold     = decimal.NewFromInt(60)
	criticalThreshold = decimal.NewFromInt(90)
)

func level(percentage decimal.Decimal) UsageLevel {
	switch {
	case percentage.LessThan(highThreshold):
		return UsageLow
	case percentage.LessThan(criticalThreshold):
		return UsageHigh
	default:
		return UsageCritical
	}
}

// BudgetUsage is the state of a budget.
//
// Spent is the real sum of expenses, it can exceed Allocated. Remaining is
// never negative and Percentage never exceeds 100.
type BudgetUsage struct {
	Allocated  decimal.Decimal `json:"allocated" example:"200"`
	Spent      decimal.Decimal `json:"spent" example:"250"`
	Remaining  decimal.Decimal `json:"remaining" example:"0"`
	Percentage decimal.Decimal `json:"percentage" example:"100"`
	Level      UsageLevel      `json:"level" example:"critical"`
}

func usage(allocated, spent decimal.Decimal) BudgetUsage {
	percentage := UsagePercentage(spent, allocated)

	return BudgetUsage{
		Allocated:  allocated,
		Spent:      spent,
		Remaining:  decimal.Max(decimal.Zero, allocated.Sub(spent)),
		Percentage: percentage,
		Level:      level(percentage),
	}
}

// CategoryExpense sums the expenses of the category in the month.
func (s Snapshot) CategoryExpense(categoryID uuid.UUID, month types.Month) decimal.Decimal {
	return sum(s.MonthTransactions(month), func(t models.Transaction) bool {
		return t.Type == models.TransactionTypeExpense && t.CategoryID == categoryID
	})
}

// BudgetUsage returns the usage of the budget by the expenses in its
// category and month.
func (s Snapshot) BudgetUsage(budget models.Budget) BudgetUsage {
	return usage(budget.Amount, s.CategoryExpense(budget.CategoryID, budget.Period()))
}

// BudgetStatus is a budget together with its usage.
type BudgetStatus struct {
	Budget       models.Budget `json:"budget"`
	CategoryName string        `json:"categoryName" example:"Groceries"`
	Usage        BudgetUsage   `json:"usage"`
}

// MonthOverview is the state of all budgets in a month.
//
// Usage compares the sum of all budgets to all expenses of the month,
// including expenses in categories without a budget.
type MonthOverview struct {
	Month   types.Month     `json:"month" swaggertype:"string" example:"2024-01-01T00:00:00Z"`
	Budgets []BudgetStatus  `json:"budgets"`
	Usage   BudgetUsage     `json:"usage"`
	Income  decimal.Decimal `json:"income" example:"2500"`
}

// MonthOverview returns the usage of every budget in the month in stored
// order and the overall usage.
func (s Snapshot) MonthOverview(month types.Month) MonthOverview {
	overview := MonthOverview{
		Month:   month,
		Budgets: []BudgetStatus{},
	}

	allocated := decimal.Zero
	for _, b := range s.budgets {
		if !b.Period().Equal(month) {
			continue
		}

		allocated = allocated.Add(b.Amount)
		overview.Budgets = append(overview.Budgets, BudgetStatus{
			Budget:       b,
			CategoryName: s.CategoryName(b.CategoryID),
			Usage:        s.BudgetUsage(b),
		})
	}

	overview.Usage = usage(allocated, s.TotalExpense(month.Range()))
	overview.Income = s.TotalIncome(month.Range())
	return overview
}
