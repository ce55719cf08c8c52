package srt

import (
	"fmt"
	"strconv"
	"time"
)

// EncodeTimestamp converts a duration to an SRT timestamp of the form
// HH:MM:SS,mmm. Hours are not wrapped at 24, so durations past a day keep
// growing the hour field. Sub-millisecond precision is truncated.
func EncodeTimestamp(d time.Duration) string {
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second
	millis := (d % time.Second) / time.Millisecond

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// DecodeTimestamp converts SRT timestamp text to a duration. The text is
// split on every comma, period, and colon and must produce exactly four
// integer fields: hours, minutes, seconds, milliseconds. Both "," and "."
// millisecond separators seen in the wild are therefore accepted. Anything
// else fails with a *TimestampError.
func DecodeTimestamp(value string) (time.Duration, error) {
	fields := splitTimestamp(value)
	if len(fields) != 4 {
		return 0, &TimestampError{
			Value:  value,
			Reason: fmt.Sprintf("expected 4 fields, got %d", len(fields)),
		}
	}

	parts := make([]time.Duration, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, &TimestampError{
				Value:  value,
				Reason: fmt.Sprintf("field %q is not an integer", field),
			}
		}
		parts[i] = time.Duration(n)
	}

	return parts[0]*time.Hour +
		parts[1]*time.Minute +
		parts[2]*time.Second +
		parts[3]*time.Millisecond, nil
}

// splitTimestamp splits on every separator byte, keeping empty fields so
// that input like "1::2,3" is rejected instead of being quietly reassembled.
func splitTimestamp(value string) []string {
	fields := make([]string, 0, 4)
	start := 0
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case ',', '.', ':':
			fields = append(fields, value[start:i])
			start = i + 1
		}
	}
	return append(fields, value[start:])
}
