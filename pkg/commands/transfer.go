package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daylog/pkg/commands/options"
	"tableflip.dev/daylog/pkg/runner/clip"
	"tableflip.dev/daylog/pkg/runner/export"
	"tableflip.dev/daylog/pkg/runner/ingest"
)

func addImport(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var (
		path   string
		todos  bool
		commit bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Parse plain text into entries, preview, and commit.",
		Long: `Parse freeform text, one entry per line. Log lines look like
"[2026-02-28] 09:00 - standup"; the date is optional and a line without a
time becomes content at the current time. Todo lines are "[2026-02-28] - x"
or "- x". Duplicates are flagged and start deselected; nothing is merged
without --commit.`,
		Example: `
daylog import --file notes.txt
cat notes.txt | daylog import --commit
daylog import --todos --file tasks.txt --commit --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			i := ingest.Ingest{
				Service: svc,
				Todos:   todos,
				Path:    path,
				Date:    selectedDate(svc, do.Date),
				Commit:  commit,
				All:     all,
			}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Read from a file instead of stdin.")
	cmd.Flags().BoolVar(&todos, "todos", false, "Parse todo lines instead of log lines.")
	cmd.Flags().BoolVar(&commit, "commit", false, "Merge the selected entries after the preview.")
	cmd.Flags().BoolVar(&all, "all", false, "Select flagged duplicates too.")
	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var (
		todos     bool
		out       string
		toFile    bool
		clipboard bool
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write entries in the plain-text interchange format.",
		Example: `
daylog export
daylog export --todos --date 2026-02-28 --save
daylog export --clipboard
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			date := selectedDate(svc, do.Date)
			if all {
				date = ""
			}
			e := export.Export{
				Service:      svc,
				Date:         date,
				Todos:        todos,
				Out:          out,
				OutDefaulted: toFile,
				Clipboard:    clipboard,
			}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&todos, "todos", false, "Export todos instead of logs.")
	cmd.Flags().BoolVar(&all, "all", false, "Export every date bucket.")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file.")
	cmd.Flags().BoolVar(&toFile, "save", false, `Write to "<date>-<logs|todos>.txt".`)
	cmd.Flags().BoolVar(&clipboard, "clipboard", false, "Copy to the clipboard instead of printing.")
	options.AddDateArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

func addCopy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy one entry's content to the clipboard.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadSession()
			if err != nil {
				return err
			}
			c := clip.Copy{Service: svc, ID: args[0]}
			return c.Do(context.Background())
		},
	}
	topLevel.AddCommand(cmd)
}
