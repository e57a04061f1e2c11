package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "add <message>",
		Short: "Record a log entry at the current time.",
		Example: `
daylog add wrote report
daylog add --date 2026-02-28 sent the invoice
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			a := add.Add{
				Service: svc,
				Date:    selectedDate(svc, do.Date),
				Message: strings.Join(args, " "),
			}
			return a.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
