package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-print a date's buckets when the store changes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, p, err := loadSession()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				Service:     svc,
				Persistence: p,
				Date:        selectedDate(svc, do.Date),
				ShowID:      io.ShowID,
			}
			return w.Do(ctx)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
