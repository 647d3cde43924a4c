package types

import (
	"errors"
	"time"
)

// RangeLabel names the preset a DateRange was built from.
type RangeLabel string

const (
	RangeDaily   RangeLabel = "daily"
	RangeWeekly  RangeLabel = "weekly"
	RangeMonthly RangeLabel = "monthly"
	RangeCustom  RangeLabel = "custom"
)

var ErrRangeLabel = errors.New("the range must be one of daily, weekly, monthly")

// DateRange is an inclusive pair of timestamps.
//
// Comparisons use the full timestamp. Callers wanting whole days need to
// normalize Start and End to day boundaries, e.g. with CustomRange.
type DateRange struct {
	Start time.Time  `json:"startDate" example:"2024-01-01T00:00:00Z"`
	End   time.Time  `json:"endDate" example:"2024-01-31T23:59:59.999999999Z"`
	Label RangeLabel `json:"label" example:"monthly"`
}

// Contains reports whether t lies within the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Months returns every Month the range touches, in ascending order.
func (r DateRange) Months() []Month {
	if r.End.Before(r.Start) {
		return nil
	}

	var months []Month
	for m, last := MonthOf(r.Start), MonthOf(r.End); !m.After(last); m = m.AddDate(0, 1) {
		months = append(months, m)
	}
	return months
}

// CustomRange returns a range from the start of the day of start to the
// end of the day of end, both evaluated in UTC.
func CustomRange(start, end time.Time) DateRange {
	return DateRange{
		Start: StartOfDay(start),
		End:   EndOfDay(end),
		Label: RangeCustom,
	}
}

// DefaultRange returns the preset range containing now. Weeks start on Monday.
func DefaultRange(label RangeLabel, now time.Time) (DateRange, error) {
	switch label {
	case RangeDaily:
		return DateRange{Start: StartOfDay(now), End: EndOfDay(now), Label: RangeDaily}, nil
	case RangeWeekly:
		start := StartOfDay(now)
		// time.Sunday is 0, shift so that Monday is the first day
		offset := (int(start.Weekday()) + 6) % 7
		start = start.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 6)), Label: RangeWeekly}, nil
	case RangeMonthly, "":
		return MonthOf(now).Range(), nil
	}

	return DateRange{}, ErrRangeLabel
}

// StartOfDay returns 00:00 UTC on the day of t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.In(time.UTC).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last instant of the day of t in UTC.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
