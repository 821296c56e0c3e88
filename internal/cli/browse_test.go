package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/calendar"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBrowser(t *testing.T) *teatest.Driver {
	t.Helper()
	ds, err := calendar.Generate("2025-2026")
	require.NoError(t, err)
	calendar.SortDeadlines(ds)
	return teatest.New(t, newBrowserModel("2025-2026", ds, testNow, 0, ""), teatest.WithSize(120, 40))
}

func browser(d *teatest.Driver) browserModel {
	return d.Model.(browserModel)
}

func TestBrowser_MonthFilterCycles(t *testing.T) {
	d := newTestBrowser(t)
	assert.Len(t, browser(d).table.Rows(), 64)

	d.Press("]")
	assert.Equal(t, time.April, browser(d).month)
	assert.Len(t, browser(d).table.Rows(), 4)

	d.Press("[", "[")
	assert.Equal(t, time.March, browser(d).month)

	d.Press("]")
	assert.Equal(t, time.Month(0), browser(d).month, "wraps back to all months")
}

func TestBrowser_ServiceFilterAndReset(t *testing.T) {
	d := newTestBrowser(t)
	for i := 0; i < len(browser(d).services); i++ {
		d.Press("s")
		if browser(d).service == domain.ServiceGST {
			break
		}
	}
	require.Equal(t, domain.ServiceGST, browser(d).service)
	assert.Len(t, browser(d).table.Rows(), 38)

	d.Press("a")
	assert.Empty(t, browser(d).service)
	assert.Len(t, browser(d).table.Rows(), 64)
}

func TestBrowser_SelectionAndView(t *testing.T) {
	d := newTestBrowser(t)
	d.Press("]")
	first, ok := browser(d).Selected()
	require.True(t, ok)

	d.Press("down")
	second, ok := browser(d).Selected()
	require.True(t, ok)
	assert.NotEqual(t, first.Title, second.Title)

	view := d.View()
	assert.Contains(t, view, "FY 2025-2026")
	assert.Contains(t, view, "April")
	assert.Contains(t, view, "4 deadlines")

	d.Press("q")
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestStepMonth(t *testing.T) {
	assert.Equal(t, time.April, stepMonth(0, 1))
	assert.Equal(t, time.March, stepMonth(0, -1))
	assert.Equal(t, time.January, stepMonth(time.December, 1))
	assert.Equal(t, time.Month(0), stepMonth(time.April, -1))
}
