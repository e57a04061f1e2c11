package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	var (
		timezone string
		format   string
		theme    string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change timezone, time format, and theme.",
		Long: `Show or change the session settings. Changing the timezone or the hour
format re-renders every stored display time under the new setting; the
canonical timestamps never move.`,
		Example: `
daylog settings
daylog settings --timezone Asia/Tokyo
daylog settings --format 12
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			s := settings.Set{
				Service:  svc,
				Timezone: timezone,
				Format:   format,
				Theme:    theme,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", `IANA zone, example: --timezone "America/New_York".`)
	cmd.Flags().StringVar(&format, "format", "", `Hour format, "12" or "24".`)
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme name.")
	topLevel.AddCommand(cmd)
}
