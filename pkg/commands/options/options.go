// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// DateOptions captures the date-bucket selection flag.
type DateOptions struct {
	Date string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Date bucket to operate on, example: --date="2026-02-28". Defaults to today.`)
}

// IDOptions controls id display on listings.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-ids", "i", false,
		"Show entry ids, needed for edit, toggle, rm, and copy.")
}

// ConfirmOptions is the explicit confirmation handshake for bulk deletes.
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Confirm the bulk operation.")
}
