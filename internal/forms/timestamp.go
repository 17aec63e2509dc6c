package forms

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// ErrTimestampFormat is returned when a timestamp cell does not match
// M/D/YYYY with an optional " h:mm:ss" time of day.
var ErrTimestampFormat = eris.New("timestamp does not match M/D/YYYY[ h:mm:ss]")

var timestampPattern = regexp.MustCompile(`^(\d+)/(\d+)/(\d+)(?:\s+(\d+):(\d+):(\d+))?$`)

// ParseTimestamp parses the spreadsheet's timestamp text.
//
// Accepted forms:
//   - "10/4/2016"          : date only, time of day is midnight
//   - "10/4/2016 15:09:24" : date and time
//
// The result is in UTC. Calendar-invalid values such as "2/30/2017" are rejected.
func ParseTimestamp(text string) (time.Time, error) {
	match := timestampPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return time.Time{}, eris.Wrapf(ErrTimestampFormat, "parse %q", text)
	}

	parts := make([]int, 6)
	for i, raw := range match[1:] {
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, eris.Wrapf(ErrTimestampFormat, "parse %q", text)
		}
		parts[i] = n
	}
	month, day, year := parts[0], parts[1], parts[2]
	hour, minute, second := parts[3], parts[4], parts[5]

	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, eris.Wrapf(ErrTimestampFormat, "parse %q: time of day out of range", text)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, eris.Wrapf(ErrTimestampFormat, "parse %q: not a calendar date", text)
	}

	return t, nil
}
