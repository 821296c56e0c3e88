package cli

import (
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPublishCmd(a *App) *cobra.Command {
	var fy string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the deadline calendar to Google Calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fiscalYear := fiscalYearOrCurrent(fy, a.now())

			stop := func() {}
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Publishing FY "+fiscalYear+"...")
			}
			res, err := a.Publish.Publish(cmd.Context(), fiscalYear)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatPublishResult(res, a.Config.GCal.CalendarID))
			return nil
		},
	}
	cmd.Flags().StringVar(&fy, "fy", "", "fiscal year, e.g. 2025-26 (default: current)")
	return cmd
}
