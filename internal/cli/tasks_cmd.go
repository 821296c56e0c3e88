package cli

import (
	"fmt"

	"github.com/alexanderramin/filingdesk/internal/cli/formatter"
	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/repository"
	"github.com/spf13/cobra"
)

func newTasksCmd(a *App) *cobra.Command {
	var fy, clientID, status, source string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			tasks, err := a.Tasks.List(ctx, repository.TaskFilter{
				FiscalYear: normalizeFiscalYear(fy),
				ClientID:   clientID,
				Status:     domain.TaskStatus(status),
				Source:     domain.TaskSource(source),
			})
			if err != nil {
				return err
			}

			names := map[string]string{}
			if a.Clients != nil {
				clients, err := a.Clients.ListAll(ctx)
				if err != nil {
					return err
				}
				for _, c := range clients {
					names[c.ID] = c.Name
				}
			}
			fmt.Fprint(out(cmd), formatter.FormatTasks(tasks, names, a.now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&fy, "fy", "", "fiscal year, e.g. 2025-26")
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().StringVar(&status, "status", "", "pending, in_progress, review, completed or overdue")
	cmd.Flags().StringVar(&source, "source", "", "sync or manual")

	cmd.AddCommand(newTaskCompleteCmd(a), newTaskAssignCmd(a))
	return cmd
}

func newTaskCompleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <task-id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.Tasks.Complete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "%s %s\n", formatter.StyleGreen.Render("✔ Completed"), t.Title)
			return nil
		},
	}
}

func newTaskAssignCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <task-id> <user-id>",
		Short: "Assign a task to a staff member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.Tasks.Assign(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "%s %s -> %s\n", formatter.StyleGreen.Render("✔ Assigned"), t.Title, args[1])
			return nil
		},
	}
}
