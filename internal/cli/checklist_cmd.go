package cli

import (
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newChecklistCmd(a *App) *cobra.Command {
	var clientID, taskType string

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Compare a client's documents with a filing checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := a.Checklists.Report(cmd.Context(), clientID, domain.TaskType(taskType))
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), formatter.FormatChecklist(report))
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().StringVar(&taskType, "type", "", "task type, e.g. itr_filing (see `filingdesk catalog`)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func newCatalogCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the checklist catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(out(cmd), formatter.FormatCatalog(a.Checklists.Catalog()))
			return nil
		},
	}
}
