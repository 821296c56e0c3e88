package cli

import (
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRosterCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage clients, staff and documents",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import clients, users and documents from a YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Roster.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatRosterImport(res))
			return nil
		},
	})
	return cmd
}
