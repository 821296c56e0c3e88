package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAlertsCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Send and read deadline alerts",
	}
	cmd.AddCommand(newAlertsSendCmd(a), newAlertsListCmd(a))
	return cmd
}

func newAlertsSendCmd(a *App) *cobra.Command {
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Notify staff about tasks due in 7, 3 or 1 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := app.AlertRequest{}
			if nowFlag != "" {
				t, err := parseNow(nowFlag, a)
				if err != nil {
					return err
				}
				req.Now = &t
			}

			var res *app.AlertResult
			err := withRunLock(a, func() error {
				var runErr error
				res, runErr = a.Alerts.SendAlerts(cmd.Context(), req)
				return runErr
			})
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatAlertResult(res))
			if res.FailedCount > 0 {
				return fmt.Errorf("%d alerts could not be created", res.FailedCount)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nowFlag, "now", "", "run as of this date or RFC3339 time")
	return cmd
}

// parseNow reads a YYYY-MM-DD date (noon in the configured zone) or an
// RFC3339 timestamp.
func parseNow(s string, a *App) (time.Time, error) {
	loc := a.Config.Location
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

func newAlertsListCmd(a *App) *cobra.Command {
	var userID string
	var unread bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := a.Notifications.ListForUser(cmd.Context(), userID, unread)
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatNotifications(notes, a.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id")
	cmd.Flags().BoolVar(&unread, "unread", false, "only unread notifications")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
