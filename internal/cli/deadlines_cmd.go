package cli

import (
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newDeadlinesCmd(a *App) *cobra.Command {
	var fy, service string
	var month monthFlag
	var browse bool

	cmd := &cobra.Command{
		Use:     "deadlines",
		Aliases: []string{"calendar"},
		Short:   "Show the statutory deadline calendar for a fiscal year",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := month.Month()
			svc, err := parseService(service)
			if err != nil {
				return err
			}
			now := a.now()
			q := app.DeadlineQuery{FiscalYear: fiscalYearOrCurrent(fy, now), Month: m, Service: svc}

			if browse {
				if !a.interactive() {
					return fmt.Errorf("--browse needs an interactive terminal")
				}
				all, err := a.Calendar.ListDeadlines(cmd.Context(), app.DeadlineQuery{FiscalYear: q.FiscalYear})
				if err != nil {
					return err
				}
				return runBrowser(newBrowserModel(q.FiscalYear, all, now, m, svc))
			}

			ds, err := a.Calendar.ListDeadlines(cmd.Context(), q)
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatDeadlines(q.FiscalYear, ds, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&fy, "fy", "", "fiscal year, e.g. 2025-26 (default: current)")
	cmd.Flags().Var(&month, "month", "only deadlines due in this month (1-12 or name)")
	cmd.Flags().StringVar(&service, "service", "", "only deadlines of this service, e.g. gst, tds")
	cmd.Flags().BoolVar(&browse, "browse", false, "open the interactive browser")
	return cmd
}

func newFYCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fy",
		Short: "Print the current fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(out(cmd), formatter.FormatFiscalYear(domain.CurrentFiscalYear(a.now())))
			return nil
		},
	}
}
