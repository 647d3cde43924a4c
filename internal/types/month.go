// Package types implements calendar types shared by the budgeting packages.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year, always stored as 00:00 UTC
// on the first day of the month.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// BudgetMonth returns the Month for the zero based month index used
// by budgets (0 is January, 11 is December).
func BudgetMonth(year, index int) Month {
	return NewMonth(year, time.Month(index+1))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year(), time.Time(m).Month())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Index returns the zero based month index (0 is January).
func (m Month) Index() int {
	return int(time.Time(m).Month()) - 1
}

// Name returns the full month and year, e.g. "January 2024".
func (m Month) Name() string {
	return time.Time(m).Format("January 2006")
}

// FirstDay returns the first instant of the month.
func (m Month) FirstDay() time.Time {
	return time.Time(m)
}

// LastDay returns the last instant of the last day of the month.
func (m Month) LastDay() time.Time {
	return time.Time(m.AddDate(0, 1)).Add(-time.Nanosecond)
}

// Range returns the month as an inclusive DateRange.
func (m Month) Range() DateRange {
	return DateRange{Start: m.FirstDay(), End: m.LastDay(), Label: RangeMonthly}
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be a string in "YYYY-MM", "YYYY-MM-DD"
// or RFC3339 format. Everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if match, _ := regexp.MatchString("^[0-9]{4}-[0-9]{2}$", value); match {
		month, err := ParseMonth(value)
		if err != nil {
			return err
		}
		*m = month
		return nil
	}

	pattern := time.RFC3339
	if match, _ := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value); match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// MonthOf returns the Month in which a time occurs, evaluated in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.In(time.UTC).Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t).Equal(m)
}
