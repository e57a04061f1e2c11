package app

import (
	"fmt"

	"tableflip.dev/daylog/pkg/entry"
	"tableflip.dev/daylog/pkg/timeclock"
)

// Settings is the per-identity session configuration. Changing timezone or
// format re-renders every stored display time without touching canonical
// timestamps.
type Settings struct {
	Timezone   string           `json:"timezone"`
	TimeFormat timeclock.Format `json:"timeFormat"`
	Theme      string           `json:"theme"`
	LastDate   string           `json:"lastDate,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		Timezone:   "UTC",
		TimeFormat: timeclock.Format24,
		Theme:      "dark",
	}
}

// SetTimezone validates the zone, re-renders every log's display time, and
// re-sorts the buckets. Entries without a canonical timestamp pass through
// unchanged; they cannot be re-derived.
func (s *Service) SetTimezone(tz string) error {
	if !timeclock.ValidZone(tz) {
		return fmt.Errorf("app: unknown timezone %q", tz)
	}
	s.Settings.Timezone = tz
	s.reconvertAll()
	return nil
}

// SetTimeFormat switches 12/24-hour rendering and re-renders display times.
func (s *Service) SetTimeFormat(f timeclock.Format) error {
	if f != timeclock.Format12 && f != timeclock.Format24 {
		return fmt.Errorf("app: time format must be %q or %q", timeclock.Format12, timeclock.Format24)
	}
	s.Settings.TimeFormat = f
	s.reconvertAll()
	return nil
}

func (s *Service) SetTheme(theme string) {
	s.Settings.Theme = theme
}

func (s *Service) reconvertAll() {
	for _, bucket := range s.Logs {
		for _, e := range bucket {
			if e == nil || e.Canonical == 0 {
				continue
			}
			e.Display = timeclock.Render(e.Canonical, s.Settings.Timezone, s.Settings.TimeFormat)
		}
		entry.SortLogs(bucket)
	}
}
