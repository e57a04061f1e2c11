package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	logsOnly := false
	todosOnly := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a date's logs and todos.",
		Example: `
daylog get
daylog get --date 2026-02-28
daylog get --logs --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			g := get.Get{
				Service:   svc,
				Date:      selectedDate(svc, do.Date),
				ShowID:    io.ShowID,
				LogsOnly:  logsOnly,
				TodosOnly: todosOnly,
			}
			return g.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&logsOnly, "logs", false, "Show only the log bucket.")
	cmd.Flags().BoolVar(&todosOnly, "todos", false, "Show only the todo bucket.")
	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
