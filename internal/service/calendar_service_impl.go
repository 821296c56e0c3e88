package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

type calendarService struct{}

func NewCalendarService() CalendarService {
	return calendarService{}
}

func (calendarService) ListDeadlines(_ context.Context, q app.DeadlineQuery) ([]domain.Deadline, error) {
	if err := app.ValidateMonth(q.Month); err != nil {
		return nil, err
	}
	if q.Service != "" && !domain.ValidServices[q.Service] {
		return nil, fmt.Errorf("unknown service %q", q.Service)
	}

	deadlines, err := calendar.Generate(q.FiscalYear)
	if err != nil {
		return nil, err
	}
	calendar.SortDeadlines(deadlines)
	deadlines = calendar.FilterByMonth(deadlines, q.Month)

	if q.Service == "" {
		return deadlines, nil
	}
	var out []domain.Deadline
	for _, d := range deadlines {
		if d.Service == q.Service {
			out = append(out, d)
		}
	}
	return out, nil
}
