package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextMonth   key.Binding
	PrevMonth   key.Binding
	NextService key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevMonth, k.NextMonth, k.NextService, k.Reset, k.Quit}
}

func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var browserKeys = browserKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextMonth:   key.NewBinding(key.WithKeys("]", "right", "l"), key.WithHelp("]", "next month")),
	PrevMonth:   key.NewBinding(key.WithKeys("[", "left", "h"), key.WithHelp("[", "prev month")),
	NextService: key.NewBinding(key.WithKeys("s", "tab"), key.WithHelp("s", "service")),
	Reset:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// fiscalMonths lists months in fiscal-year order, April first.
var fiscalMonths = []time.Month{
	time.April, time.May, time.June, time.July, time.August, time.September,
	time.October, time.November, time.December, time.January, time.February, time.March,
}

// browserModel is a bubbletea table over one fiscal year's deadlines with
// month and service filters.
type browserModel struct {
	fiscalYear string
	all        []domain.Deadline
	today      time.Time

	month    time.Month
	service  domain.Service
	services []domain.Service

	table table.Model
	help  help.Model
	quit  bool
}

func newBrowserModel(fiscalYear string, all []domain.Deadline, today time.Time, month time.Month, service domain.Service) browserModel {
	services := make([]domain.Service, 0, len(domain.ValidServices))
	for s := range domain.ValidServices {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i] < services[j] })

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Due", Width: 12},
			{Title: "Filing", Width: 36},
			{Title: "Service", Width: 18},
			{Title: "Priority", Width: 8},
			{Title: "When", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorBlue).
		Bold(false)
	t.SetStyles(styles)

	m := browserModel{
		fiscalYear: fiscalYear,
		all:        all,
		today:      today,
		month:      month,
		service:    service,
		services:   services,
		table:      t,
		help:       help.New(),
	}
	m.refresh()
	return m
}

// visible applies the month and service filters.
func (m browserModel) visible() []domain.Deadline {
	var out []domain.Deadline
	for _, d := range m.all {
		if m.month != 0 && d.Date.Month() != m.month {
			continue
		}
		if m.service != "" && d.Service != m.service {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (m *browserModel) refresh() {
	ds := m.visible()
	rows := make([]table.Row, 0, len(ds))
	for _, d := range ds {
		rows = append(rows, table.Row{
			formatter.HumanDate(d.Date),
			d.Title,
			string(d.Service),
			string(d.Priority),
			formatter.DueIn(d.Date, m.today),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m browserModel) Init() tea.Cmd { return nil }

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, browserKeys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, browserKeys.NextMonth):
			m.month = stepMonth(m.month, 1)
			m.refresh()
			return m, nil
		case key.Matches(msg, browserKeys.PrevMonth):
			m.month = stepMonth(m.month, -1)
			m.refresh()
			return m, nil
		case key.Matches(msg, browserKeys.NextService):
			m.service = m.nextService()
			m.refresh()
			return m, nil
		case key.Matches(msg, browserKeys.Reset):
			m.month, m.service = 0, ""
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// stepMonth moves through "all months" followed by April..March.
func stepMonth(cur time.Month, dir int) time.Month {
	idx := 0
	for i, mo := range fiscalMonths {
		if mo == cur {
			idx = i + 1
		}
	}
	n := len(fiscalMonths) + 1
	idx = ((idx+dir)%n + n) % n
	if idx == 0 {
		return 0
	}
	return fiscalMonths[idx-1]
}

func (m browserModel) nextService() domain.Service {
	if m.service == "" {
		return m.services[0]
	}
	for i, s := range m.services {
		if s == m.service {
			if i+1 < len(m.services) {
				return m.services[i+1]
			}
			return ""
		}
	}
	return ""
}

// Selected returns the deadline under the cursor.
func (m browserModel) Selected() (domain.Deadline, bool) {
	ds := m.visible()
	i := m.table.Cursor()
	if i < 0 || i >= len(ds) {
		return domain.Deadline{}, false
	}
	return ds[i], true
}

func (m browserModel) View() string {
	if m.quit {
		return ""
	}
	month := "all months"
	if m.month != 0 {
		month = m.month.String()
	}
	service := "all services"
	if m.service != "" {
		service = string(m.service)
	}

	var b strings.Builder
	b.WriteString(formatter.Header("FY " + m.fiscalYear))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s · %d deadlines", month, service, len(m.table.Rows()))))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if d, ok := m.Selected(); ok && d.Description != "" {
		b.WriteString(formatter.StyleFg.Render(d.Description))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(browserKeys))
	b.WriteString("\n")
	return b.String()
}

func runBrowser(m browserModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
