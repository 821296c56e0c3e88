package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FiscalYear is an April-to-March accounting year identified as "start-end".
type FiscalYear struct {
	Start int
	End   int
}

// ParseFiscalYear parses "2025-2026". The end year must follow the start year.
func ParseFiscalYear(s string) (FiscalYear, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 || !isYear(parts[0]) || !isYear(parts[1]) {
		return FiscalYear{}, fmt.Errorf("%w: %q must look like 2025-2026", ErrInvalidFiscalYear, s)
	}
	start, _ := strconv.Atoi(parts[0])
	end, _ := strconv.Atoi(parts[1])
	if end != start+1 {
		return FiscalYear{}, fmt.Errorf("%w: %q: end year must be %d", ErrInvalidFiscalYear, s, start+1)
	}
	return FiscalYear{Start: start, End: end}, nil
}

// isYear reports whether s is exactly four ASCII digits.
func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// CurrentFiscalYear returns the fiscal year containing now. April starts a new year.
func CurrentFiscalYear(now time.Time) FiscalYear {
	y := now.Year()
	if now.Month() >= time.April {
		return FiscalYear{Start: y, End: y + 1}
	}
	return FiscalYear{Start: y - 1, End: y}
}

func (fy FiscalYear) String() string {
	return fmt.Sprintf("%d-%d", fy.Start, fy.End)
}

// FirstDay is April 1 of the start year.
func (fy FiscalYear) FirstDay() time.Time {
	return time.Date(fy.Start, time.April, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay is March 31 of the end year.
func (fy FiscalYear) LastDay() time.Time {
	return time.Date(fy.End, time.March, 31, 0, 0, 0, 0, time.UTC)
}
