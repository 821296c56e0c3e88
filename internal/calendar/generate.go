// Package calendar derives statutory filing deadlines for a fiscal year from
// a declarative rule table.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// Generate returns every deadline of the canonical rule table for fiscalYear
// ("2025-2026"). The result follows rule order and is not sorted by date.
func Generate(fiscalYear string) ([]domain.Deadline, error) {
	fy, err := domain.ParseFiscalYear(fiscalYear)
	if err != nil {
		return nil, err
	}
	return Evaluate(fy, Rules)
}

// Evaluate expands rules against a fiscal year.
func Evaluate(fy domain.FiscalYear, rules []Rule) ([]domain.Deadline, error) {
	var deadlines []domain.Deadline
	for i, r := range rules {
		ds, err := r.expand(fy)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, r.Title, err)
		}
		deadlines = append(deadlines, ds...)
	}
	return deadlines, nil
}

func (r Rule) expand(fy domain.FiscalYear) ([]domain.Deadline, error) {
	switch r.Repeat {
	case Once:
		year := fy.Start
		if r.Anchor == EndYear {
			year = fy.End
		}
		date, err := civilDate(year, r.Month, r.Day)
		if err != nil {
			return nil, err
		}
		return []domain.Deadline{r.deadline(fy, date)}, nil

	case MonthlyFollowing:
		out := make([]domain.Deadline, 0, 12)
		for i := 0; i < 12; i++ {
			periodYear, periodMonth := addMonths(fy.Start, time.April, i)
			dueYear, dueMonth := addMonths(periodYear, periodMonth, 1)
			date, err := civilDate(dueYear, dueMonth, r.Day)
			if err != nil {
				return nil, err
			}
			out = append(out, r.deadline(fy, date))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown repeat mode %d", r.Repeat)
}

func (r Rule) deadline(fy domain.FiscalYear, date time.Time) domain.Deadline {
	title, description := r.Title, r.Description
	if r.Repeat == MonthlyFollowing {
		label := periodLabel(date)
		title = strings.ReplaceAll(title, periodToken, label)
		description = strings.ReplaceAll(description, periodToken, label)
	}
	return domain.Deadline{
		Date:        date,
		Title:       title,
		TaskType:    r.TaskType,
		Service:     r.Service,
		Priority:    r.Priority,
		Description: description,
		FiscalYear:  fy.String(),
	}
}

// periodLabel names the month before due, which is the month a monthly
// filing reports on.
func periodLabel(due time.Time) string {
	y, m := addMonths(due.Year(), due.Month(), -1)
	return fmt.Sprintf("%s %d", m, y)
}

func addMonths(year int, month time.Month, n int) (int, time.Month) {
	total := year*12 + int(month-1) + n
	return total / 12, time.Month(total%12 + 1)
}

// civilDate builds a UTC midnight date, rejecting days that would roll over
// into the next month.
func civilDate(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("invalid month %d", month)
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day < 1 || day > last {
		return time.Time{}, fmt.Errorf("day %d out of range for %s %d", day, month, year)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// SortDeadlines orders deadlines by date, then title.
func SortDeadlines(ds []domain.Deadline) {
	sort.SliceStable(ds, func(i, j int) bool {
		if !ds[i].Date.Equal(ds[j].Date) {
			return ds[i].Date.Before(ds[j].Date)
		}
		return ds[i].Title < ds[j].Title
	})
}

// FilterByMonth keeps deadlines due in month. A zero month keeps everything.
func FilterByMonth(ds []domain.Deadline, month time.Month) []domain.Deadline {
	if month == 0 {
		return ds
	}
	var out []domain.Deadline
	for _, d := range ds {
		if d.Date.Month() == month {
			out = append(out, d)
		}
	}
	return out
}

// MonthGroup is a run of deadlines due in the same calendar month.
type MonthGroup struct {
	Year      int
	Month     time.Month
	Deadlines []domain.Deadline
}

// GroupByMonth splits date-sorted deadlines into consecutive month groups.
func GroupByMonth(ds []domain.Deadline) []MonthGroup {
	var groups []MonthGroup
	for _, d := range ds {
		n := len(groups)
		if n > 0 && groups[n-1].Year == d.Date.Year() && groups[n-1].Month == d.Date.Month() {
			groups[n-1].Deadlines = append(groups[n-1].Deadlines, d)
			continue
		}
		groups = append(groups, MonthGroup{Year: d.Date.Year(), Month: d.Date.Month(), Deadlines: []domain.Deadline{d}})
	}
	return groups
}
