package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimestampLayout is the only accepted shape of report timestamps (DD.MM.YYYY HH:MM:SS).
const TimestampLayout = "02.01.2006 15:04:05"

const timezonePrefix = "GMT"

// Timestamp is a naive local date-time as written by the diagnostic tester.
// It carries no zone; the wall clock is stored in UTC.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses s in TimestampLayout. Any other shape is rejected.
func ParseTimestamp(s string) (Timestamp, error) {
	if len(s) != len(TimestampLayout) {
		return Timestamp{}, errors.Wrapf(ErrInvalidTimestamp, "%q does not match %s", s, TimestampLayout)
	}

	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return Timestamp{}, errors.Wrapf(ErrInvalidTimestamp, "%q: %v", s, err)
	}

	return Timestamp{Time: t}, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// Timezone is a fixed UTC offset written as GMT followed by a signed HH:MM offset.
type Timezone struct {
	offset int // seconds east of UTC
}

// NewTimezone returns the timezone offset seconds east of UTC.
func NewTimezone(offsetSeconds int) Timezone {
	return Timezone{offset: offsetSeconds}
}

// ParseTimezone parses strings like "GMT-07:00" or "GMT+05:30".
func ParseTimezone(s string) (Timezone, error) {
	rest, ok := strings.CutPrefix(s, timezonePrefix)
	if !ok {
		return Timezone{}, errors.Wrapf(ErrInvalidTimezone, "%q lacks %s prefix", s, timezonePrefix)
	}

	if len(rest) != len("+00:00") || rest[3] != ':' {
		return Timezone{}, errors.Wrapf(ErrInvalidTimezone, "%q: offset must be ±HH:MM", s)
	}

	var sign int

	switch rest[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return Timezone{}, errors.Wrapf(ErrInvalidTimezone, "%q: offset must be signed", s)
	}

	hours, err := parseTwoDigits(rest[1:3])
	if err != nil || hours > 23 {
		return Timezone{}, errors.Wrapf(ErrInvalidTimezone, "%q: bad hours", s)
	}

	minutes, err := parseTwoDigits(rest[4:6])
	if err != nil || minutes > 59 {
		return Timezone{}, errors.Wrapf(ErrInvalidTimezone, "%q: bad minutes", s)
	}

	return Timezone{offset: sign * (hours*3600 + minutes*60)}, nil
}

func parseTwoDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
	}

	return strconv.Atoi(s)
}

// Offset returns the offset in seconds east of UTC.
func (tz Timezone) Offset() int {
	return tz.offset
}

// Location returns a fixed zone for the offset.
func (tz Timezone) Location() *time.Location {
	return time.FixedZone(tz.String(), tz.offset)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (tz *Timezone) UnmarshalText(text []byte) error {
	parsed, err := ParseTimezone(string(text))
	if err != nil {
		return err
	}

	*tz = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (tz Timezone) MarshalText() ([]byte, error) {
	return []byte(tz.String()), nil
}

func (tz Timezone) String() string {
	sign := '+'
	offset := tz.offset

	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	return fmt.Sprintf("%s%c%02d:%02d", timezonePrefix, sign, offset/3600, (offset%3600)/60)
}

// UnitString is a value tagged with its unit, e.g. <ODOMETER UNIT="km">12345</ODOMETER>.
type UnitString struct {
	Unit  string `val:"@UNIT"`
	Value string `val:"$text"`
}

// Equal reports whether both value and unit match.
func (u UnitString) Equal(other UnitString) bool {
	return u == other
}

func (u UnitString) String() string {
	if u.Unit == "" {
		return u.Value
	}

	return u.Value + " " + u.Unit
}
