// Package timeparse turns relative time phrases such as "5 minutes ago" into
// absolute UTC instants.
package timeparse

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparsableTime is matched by every error returned from Parse
var ErrUnparsableTime = errors.New("unparsable time")

// UnparsableError is returned when a phrase matches no grammar rule
type UnparsableError struct {
	Text string
}

func (e *UnparsableError) Error() string {
	return fmt.Sprintf("don't understand the time '%s'", e.Text)
}

// Is reports whether target is ErrUnparsableTime
func (e *UnparsableError) Is(target error) bool {
	return target == ErrUnparsableTime
}

var relativePattern = regexp.MustCompile(`(?i)^(\d+|an?)\s*([a-z]+)\s+ago$`)

var units = map[string]time.Duration{
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
}

// Parse resolves text relative to now. Empty input and "now" yield now.
// The result is always in UTC.
func Parse(text string, now time.Time) (time.Time, error) {
	now = now.UTC()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "now") {
		return now, nil
	}

	match := relativePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return time.Time{}, &UnparsableError{Text: text}
	}

	unit, ok := units[strings.ToLower(match[2])]
	if !ok {
		return time.Time{}, &UnparsableError{Text: text}
	}

	quantity := 1
	if q := strings.ToLower(match[1]); q != "a" && q != "an" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 || int64(n) > math.MaxInt64/int64(unit) {
			return time.Time{}, &UnparsableError{Text: text}
		}
		quantity = n
	}

	return now.Add(-time.Duration(quantity) * unit), nil
}

// ParseArgs joins command-line words into a phrase and parses it
func ParseArgs(args []string, now time.Time) (time.Time, error) {
	return Parse(strings.Join(args, " "), now)
}
