// Package timeclock keeps log timestamps honest: every entry stores one
// canonical epoch instant, and every displayed clock string is derived from
// that instant under the active timezone and hour format.
package timeclock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Format selects between 12-hour and 24-hour clock rendering.
type Format string

const (
	Format12 Format = "12"
	Format24 Format = "24"

	// DateLayout is the bucket key layout shared across the module.
	DateLayout = "2006-01-02"
)

// ErrParse is returned when free text contains no H:MM shaped time.
var ErrParse = errors.New("timeclock: no parsable time")

var freeTimePattern = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*([AaPp][Mm])?`)

// Location resolves an IANA zone name, falling back to UTC for unknown or
// empty names so the render path never fails mid-session. Zone names are
// validated with ValidZone when the user sets them.
func Location(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ValidZone reports whether tz names a loadable IANA timezone.
func ValidZone(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Render formats the instant as a wall-clock string in the named zone.
func Render(millis int64, tz string, f Format) string {
	t := time.UnixMilli(millis).In(Location(tz))
	if f == Format12 {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// ParseFreeTime scans text for the first H:MM or HH:MM token, with an
// optional AM/PM suffix. A suffix wins over the format argument: PM adds 12
// unless the hour is already 12, and 12 AM becomes hour 0. Without a suffix
// the hour digits are taken as written.
func ParseFreeTime(text string, f Format) (hour, minute int, err error) {
	m := freeTimePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, fmt.Errorf("%w in %q", ErrParse, text)
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, nil
}

// Compose builds the canonical instant for the given wall-clock date and
// time as observed in the named zone. Out-of-range hours and minutes are not
// rejected; they roll through normal calendar arithmetic, so hour 25 lands in
// the next day.
func Compose(date string, hour, minute int, tz string) (int64, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("timeclock: bad date %q: %w", date, err)
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, Location(tz))
	return t.UnixMilli(), nil
}

// Today returns the bucket key for the current date in the named zone.
func Today(now time.Time, tz string) string {
	return now.In(Location(tz)).Format(DateLayout)
}
