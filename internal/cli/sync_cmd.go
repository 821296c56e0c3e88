package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/alexanderramin/filingdesk/internal/runlock"
	"github.com/spf13/cobra"
)

var errAborted = errors.New("aborted")

func newSyncCmd(a *App) *cobra.Command {
	var fy, operator string
	var month monthFlag
	var yes bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create tasks for every client's deadlines in a fiscal year",
		Long: `Creates one task per client and deadline for the services each client has
signed up for. Tasks that already exist are left untouched, so sync can be
rerun safely.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := month.Month()
			if operator == "" {
				operator = a.Config.Operator
			}
			now := a.now()
			req := app.NewSyncRequest(fiscalYearOrCurrent(fy, now), operator)
			req.Month = m

			if !yes && a.interactive() && a.Confirm != nil {
				scope := "FY " + req.FiscalYear
				if m != 0 {
					scope += " (" + m.String() + ")"
				}
				ok, err := a.Confirm("Sync tasks for "+scope+"?", "Missing tasks will be created for every subscribed client.")
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}

			if a.interactive() {
				req.Progress = newSyncProgressBar(cmd.ErrOrStderr())
			}

			var res *app.SyncResult
			err := withRunLock(a, func() error {
				var runErr error
				res, runErr = a.Sync.Sync(cmd.Context(), req)
				return runErr
			})
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatSyncResult(res))
			if res.FailedCount > 0 {
				return fmt.Errorf("%d tasks could not be created; rerun sync to retry", res.FailedCount)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fy, "fy", "", "fiscal year, e.g. 2025-26 (default: current)")
	cmd.Flags().Var(&month, "month", "only deadlines due in this month (1-12 or name)")
	cmd.Flags().StringVar(&operator, "operator", "", "recorded as the task creator (default: config operator)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// withRunLock runs fn under the configured run lock. No lock path means no
// locking.
func withRunLock(a *App, fn func() error) error {
	if a.Config.LockPath == "" {
		return fn()
	}
	return runlock.With(a.Config.LockPath, fn)
}
