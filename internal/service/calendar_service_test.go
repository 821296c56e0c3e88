package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeadlines(t *testing.T) {
	svc := NewCalendarService()
	ctx := context.Background()

	all, err := svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026"})
	require.NoError(t, err)
	assert.Len(t, all, 64)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Date.Before(all[i-1].Date), "deadlines must be sorted by date")
	}

	gst, err := svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026", Service: domain.ServiceGST})
	require.NoError(t, err)
	assert.Len(t, gst, 38)

	april, err := svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026", Month: time.April})
	require.NoError(t, err)
	assert.Len(t, april, 4)

	roc, err := svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026", Month: time.April, Service: domain.ServiceROC})
	require.NoError(t, err)
	assert.Empty(t, roc)
}

func TestListDeadlines_InvalidInput(t *testing.T) {
	svc := NewCalendarService()
	ctx := context.Background()

	_, err := svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "25-26"})
	assert.ErrorIs(t, err, domain.ErrInvalidFiscalYear)

	_, err = svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026", Month: 14})
	assert.ErrorIs(t, err, app.ErrInvalidMonth)

	_, err = svc.ListDeadlines(ctx, app.DeadlineQuery{FiscalYear: "2025-2026", Service: "Payroll"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service")
}
