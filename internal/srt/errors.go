package srt

import "fmt"

// ParseError reports a coverage gap: input bytes that no block match
// accounted for. Expected is where the previous match ended (or 0), Actual
// is where the next match started (or the input length when nothing more
// matched), and Unmatched is exactly the text between the two.
type ParseError struct {
	Expected  int
	Actual    int
	Unmatched string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"expected contiguous start of match or end of input at byte %d, but started at byte %d (unmatched content: %q)",
		e.Expected, e.Actual, e.Unmatched,
	)
}

// TimestampError reports SRT timestamp text that could not be decoded.
type TimestampError struct {
	Value  string
	Reason string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("malformed SRT timestamp %q: %s", e.Value, e.Reason)
}
