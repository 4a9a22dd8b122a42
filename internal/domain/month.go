package domain

import (
	"fmt"
	"time"
)

// Month is a calendar month in the YYYY-MM form the upstream API uses for
// every month-scoped query.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// CurrentMonth returns the month containing now.
func CurrentMonth() Month {
	now := time.Now()
	return Month{Year: now.Year(), Month: now.Month()}
}

// Previous returns the preceding calendar month.
func (m Month) Previous() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// String renders the YYYY-MM query form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns midnight UTC on the first day of the month, the form the
// credit-card endpoints take as cycle_date.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Day returns the date of the given day within the month, clamped to the
// month's last day (day 31 in February yields Feb 28/29).
func (m Month) Day(target int) time.Time {
	lastDay := time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if target > lastDay {
		target = lastDay
	}
	return time.Date(m.Year, m.Month, target, 0, 0, 0, 0, time.UTC)
}
