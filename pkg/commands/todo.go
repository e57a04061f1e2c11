package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/todo"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage a date's todo items.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTodoAdd(cmd)
	addTodoToggle(cmd)
	addTodoEdit(cmd)
	topLevel.AddCommand(cmd)
}

func addTodoAdd(parent *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "add <message>",
		Short: "Add a todo.",
		Example: `
daylog todo add write report
daylog todo add --date 2026-02-28 file expenses
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			a := todo.Add{
				Service: svc,
				Date:    selectedDate(svc, do.Date),
				Message: strings.Join(args, " "),
			}
			return a.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)
	parent.AddCommand(cmd)
}

func addTodoToggle(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo's effective completion.",
		Long: `Flip a todo's completion. A todo without a manual override derives its
completion from whether any log on the same date mentions it; toggling pins
the opposite of whatever is currently showing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			t := todo.Toggle{Service: svc, ID: args[0]}
			return t.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addTodoEdit(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit <id> <new content>",
		Short: "Rewrite a todo's content.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			e := todo.Edit{
				Service: svc,
				ID:      args[0],
				Message: strings.Join(args[1:], " "),
			}
			return e.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}
