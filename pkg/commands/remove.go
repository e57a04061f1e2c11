package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/clear"
	"tableflip.dev/daylog/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove one entry, log or todo.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			r := remove.Remove{Service: svc, ID: args[0]}
			return r.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	co := &options.ConfirmOptions{}
	todos := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear a whole date bucket.",
		Example: `
daylog clear --yes
daylog clear --todos --date 2026-02-28 --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			c := clear.Clear{
				Service:   svc,
				Date:      selectedDate(svc, do.Date),
				Todos:     todos,
				Confirmed: co.Yes,
			}
			return c.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&todos, "todos", false, "Clear the todo bucket instead of logs.")
	options.AddDateArgs(cmd, do)
	options.AddConfirmArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
