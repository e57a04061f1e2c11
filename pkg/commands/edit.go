package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	var newTime string

	cmd := &cobra.Command{
		Use:   "edit <id> [new content]",
		Short: "Edit a log entry's time and/or content.",
		Long: `Edit a log entry. The --time text is parsed like "9:30", "14:05" or
"9:30 PM"; an entry keeps its prior time when the text does not parse, and
its prior content when no new content is given. Edits never move an entry to
a different date.`,
		Example: `
daylog edit 171dff69 --time "9:30 AM"
daylog edit 171dff69 reviewed the quarterly numbers
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			e := edit.Edit{
				Service: svc,
				ID:      args[0],
				Time:    newTime,
				Message: strings.Join(args[1:], " "),
			}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&newTime, "time", "t", "", `New time, example: --time "9:30 AM".`)
	topLevel.AddCommand(cmd)
}
