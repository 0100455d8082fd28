package domain

import (
	"fmt"
	"time"
)

// Period is a lookback window, named the way market data providers
// name their ranges.
type Period string

const (
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	PeriodYtd Period = "ytd"
)

var allPeriods = []Period{
	Period5d,
	Period1mo,
	Period3mo,
	Period6mo,
	Period1y,
	Period2y,
	Period5y,
	PeriodYtd,
}

func ParsePeriod(s string) (Period, error) {
	for _, p := range allPeriods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

func (p Period) Validate() error {
	_, err := ParsePeriod(string(p))
	return err
}

// Start returns the first instant covered by the period when it ends at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period5d:
		return now.AddDate(0, 0, -5)
	case Period1mo:
		return now.AddDate(0, -1, 0)
	case Period3mo:
		return now.AddDate(0, -3, 0)
	case Period6mo:
		return now.AddDate(0, -6, 0)
	case Period2y:
		return now.AddDate(-2, 0, 0)
	case Period5y:
		return now.AddDate(-5, 0, 0)
	case PeriodYtd:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return now.AddDate(-1, 0, 0)
	}
}
