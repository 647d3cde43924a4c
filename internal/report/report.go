// Package report builds the monthly finance report of a user.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smart-budget/backend/internal/aggregate"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/types"
	"golang.org/x/exp/slices"
)

const (
	descriptionLimit = 35
	topCategories    = 5
)

// Row is one transaction of the report.
type Row struct {
	TransactionID uuid.UUID              `json:"transactionId"`
	Date          string                 `json:"date" example:"January 5, 2024"`
	Category      string                 `json:"category" example:"Groceries"`
	Description   string                 `json:"description" example:"Weekly shopping"`
	Type          models.TransactionType `json:"type" example:"expense"`
	Amount        string                 `json:"amount" example:"-INR 100.00"`
}

// Totals holds the formatted sums of the month.
type Totals struct {
	Income  string `json:"income" example:"INR 2,500.00"`
	Expense string `json:"expense" example:"INR 1,320.50"`
	Balance string `json:"balance" example:"INR 1,179.50"`
}

type Report struct {
	Title         string                    `json:"title" example:"Monthly Finance Report - January 2024"`
	Recipient     string                    `json:"recipient" example:"Jo Doe"`
	GeneratedOn   string                    `json:"generatedOn" example:"February 1, 2024"`
	Month         string                    `json:"month" example:"2024-01"`
	Currency      string                    `json:"currency" example:"INR"`
	Income        decimal.Decimal           `json:"income" example:"2500"`
	Expense       decimal.Decimal           `json:"expense" example:"1320.5"`
	Balance       decimal.Decimal           `json:"balance" example:"1179.5"`
	Totals        Totals                    `json:"totals"`
	TopCategories []aggregate.CategoryTotal `json:"topCategories"`
	Comparison    aggregate.Comparison      `json:"comparison"`
	Rows          []Row                     `json:"rows"`

	month types.Month
}

// FullDate formats a date like "January 5, 2024".
func FullDate(t time.Time) string {
	return t.In(time.UTC).Format("January 2, 2006")
}

// Truncate shortens descriptions longer than 35 characters to 32
// characters followed by "...".
func Truncate(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionLimit {
		return description
	}

	return string(runes[:descriptionLimit-3]) + "..."
}

// Monthly builds the report of the month for the user of the snapshot.
func Monthly(s aggregate.Snapshot, user models.User, month types.Month, generatedAt time.Time, f Formatter) Report {
	transactions := slices.Clone(s.MonthTransactions(month))
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	r := month.Range()
	income := s.TotalIncome(r)
	expense := s.TotalExpense(r)
	balance := income.Sub(expense)

	report := Report{
		Title:       fmt.Sprintf("Monthly Finance Report - %s", month.Name()),
		Recipient:   user.Name,
		GeneratedOn: FullDate(generatedAt),
		Month:       month.String(),
		Currency:    f.Currency(),
		Income:      income,
		Expense:     expense,
		Balance:     balance,
		Totals: Totals{
			Income:  f.Format(income),
			Expense: f.Format(expense),
			Balance: f.Format(balance),
		},
		TopCategories: s.TopCategories(month, topCategories),
		Comparison:    s.MonthlyComparison(month.Year()),
		Rows:          make([]Row, 0, len(transactions)),
		month:         month,
	}

	for _, t := range transactions {
		report.Rows = append(report.Rows, Row{
			TransactionID: t.ID,
			Date:          FullDate(t.Date),
			Category:      s.CategoryName(t.CategoryID),
			Description:   Truncate(t.Description),
			Type:          t.Type,
			Amount:        f.Signed(t.Amount, t.Type != models.TransactionTypeIncome),
		})
	}

	return report
}

// Filename returns the name for the exported report with the extension,
// e.g. "smart-budget-report-2024-1.csv".
func (r Report) Filename(extension string) string {
	return fmt.Sprintf("smart-budget-report-%d-%d.%s", r.month.Year(), r.month.Index()+1, extension)
}
