package settings

import (
	"context"
	"fmt"

	"tableflip.dev/daylog/pkg/app"
	"tableflip.dev/daylog/pkg/timeclock"
)

// Set updates session settings. Changing timezone or format re-renders
// every stored display time; canonical timestamps never move.
type Set struct {
	Service *app.Service

	Timezone string
	Format   string
	Theme    string
}

func (n *Set) Do(ctx context.Context) error {
	changed := false
	if n.Timezone != "" {
		if err := n.Service.SetTimezone(n.Timezone); err != nil {
			return err
		}
		changed = true
	}
	if n.Format != "" {
		if err := n.Service.SetTimeFormat(timeclock.Format(n.Format)); err != nil {
			return err
		}
		changed = true
	}
	if n.Theme != "" {
		n.Service.SetTheme(n.Theme)
		changed = true
	}

	if changed {
		if err := n.Service.Save(); err != nil {
			return err
		}
	}

	s := n.Service.Settings
	fmt.Printf("timezone: %s\nformat:   %s-hour\ntheme:    %s\n", s.Timezone, s.TimeFormat, s.Theme)
	return nil
}
