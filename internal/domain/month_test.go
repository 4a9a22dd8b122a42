package domain

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-12")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if m.Year != 2024 || m.Month != time.December {
		t.Errorf("expected 2024-12, got %s", m)
	}
	if m.String() != "2024-12" {
		t.Errorf("expected round-trip 2024-12, got %s", m.String())
	}

	if _, err := ParseMonth("2024-13"); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := ParseMonth("diciembre"); err == nil {
		t.Error("expected error for non-numeric month")
	}
}

func TestMonthPrevious(t *testing.T) {
	m := Month{Year: 2025, Month: time.January}.Previous()
	if m.Year != 2024 || m.Month != time.December {
		t.Errorf("expected 2024-12, got %s", m)
	}

	m = Month{Year: 2025, Month: time.March}.Previous()
	if m.Year != 2025 || m.Month != time.February {
		t.Errorf("expected 2025-02, got %s", m)
	}
}

func TestMonthDay_ClampsToShortMonths(t *testing.T) {
	feb := Month{Year: 2025, Month: time.February}
	if got := feb.Day(31); got.Day() != 28 {
		t.Errorf("expected Feb 28, got day %d", got.Day())
	}

	leapFeb := Month{Year: 2024, Month: time.February}
	if got := leapFeb.Day(31); got.Day() != 29 {
		t.Errorf("expected Feb 29 in a leap year, got day %d", got.Day())
	}

	jan := Month{Year: 2025, Month: time.January}
	if got := jan.Day(15); got.Day() != 15 {
		t.Errorf("expected Jan 15, got day %d", got.Day())
	}
}
