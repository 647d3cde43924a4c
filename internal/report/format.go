package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts as currency for a locale.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for the ISO 4217 currency code and the
// BCP 47 locale, e.g. "INR" and "en-IN".
func NewFormatter(code, locale string) (Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// Currency returns the ISO code of the currency.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format returns the amount with two decimal places, prefixed with the
// currency code, e.g. "USD 1,234.50".
func (f Formatter) Format(amount decimal.Decimal) string {
	value := amount.Round(2).InexactFloat64()
	return f.printer.Sprintf("%s %v", f.unit, number.Decimal(value, number.Scale(2)))
}

// Signed formats the absolute amount with a leading + or -.
func (f Formatter) Signed(amount decimal.Decimal, negative bool) string {
	sign := "+"
	if negative {
		sign = "-"
	}

	return sign + f.Format(amount.Abs())
}
