package srt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// token is one tokenized block: the raw fields plus the exact byte span the
// match consumed, including the blank-line terminator.
type token struct {
	index       int
	startText   string
	endText     string
	proprietary string
	content     string
	spanStart   int
	spanEnd     int
}

func (t token) subtitle() (*Subtitle, error) {
	start, err := DecodeTimestamp(t.startText)
	if err != nil {
		return nil, err
	}
	end, err := DecodeTimestamp(t.endText)
	if err != nil {
		return nil, err
	}
	return &Subtitle{
		Index:       t.index,
		Start:       start,
		End:         end,
		Content:     t.content,
		Proprietary: t.proprietary,
	}, nil
}

// Parse converts SRT text into a lazy sequence of subtitles. Nothing is
// tokenized until the consumer pulls the next element.
//
// The parse is total: every input byte must belong to a matched block. Text
// before the first block, between two blocks, or after the last one
// terminates the sequence with a *ParseError carrying the exact unmatched
// content and its byte offsets. No bytes are ever silently dropped.
//
// The tokenizer works around common real-world deviations: "." as the
// millisecond separator, missing trailing newlines, and blank lines inside a
// block's content. A blank line only ends a block when the input ends there
// or the following lines look like the next block's index and timestamp;
// otherwise it is kept as content.
func Parse(input string) Sequence {
	return func(yield func(*Subtitle, error) bool) {
		expected := 0
		for expected < len(input) {
			tok, ok := findBlock(input, expected)
			if !ok {
				break
			}
			if tok.spanStart != expected {
				yield(nil, &ParseError{
					Expected:  expected,
					Actual:    tok.spanStart,
					Unmatched: input[expected:tok.spanStart],
				})
				return
			}
			sub, err := tok.subtitle()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(sub, nil) {
				return
			}
			expected = tok.spanEnd
		}
		if expected != len(input) {
			yield(nil, &ParseError{
				Expected:  expected,
				Actual:    len(input),
				Unmatched: input[expected:],
			})
		}
	}
}

// ParseReader parses SRT text from r. The whole source is read before any
// block is matched, so the result does not depend on how the underlying
// reader chunks its data.
func ParseReader(r io.Reader) Sequence {
	return func(yield func(*Subtitle, error) bool) {
		data, err := io.ReadAll(r)
		if err != nil {
			yield(nil, fmt.Errorf("reading subtitle source: %w", err))
			return
		}
		for sub, err := range Parse(string(data)) {
			if !yield(sub, err) {
				return
			}
		}
	}
}

// findBlock returns the first block matching at or after from. Candidate
// positions are every digit byte, so a coverage gap is reported with exactly
// the bytes that no match could claim. matchBlock rejects non-blocks on
// their first few bytes, keeping the scan linear in practice.
func findBlock(input string, from int) (token, bool) {
	for i := from; i < len(input); i++ {
		if !isDigit(input[i]) {
			continue
		}
		if tok, ok := matchBlock(input, i); ok {
			return tok, true
		}
	}
	return token{}, false
}

// matchBlock runs the block state machine at a fixed position: index line,
// timing line, content lines, boundary check. It is a pure function of the
// input and position, with no backtracking.
func matchBlock(input string, at int) (token, bool) {
	tok := token{spanStart: at}
	i := at

	// index line: digits up to a newline
	end, ok := scanDigits(input, i)
	if !ok || end >= len(input) || input[end] != '\n' {
		return token{}, false
	}
	index, err := strconv.Atoi(input[i:end])
	if err != nil {
		return token{}, false
	}
	tok.index = index
	i = end + 1

	// timing line: <start> --> <end>, optionally a space and proprietary
	// text, up to a newline or the end of the input
	end, ok = scanTimestamp(input, i)
	if !ok {
		return token{}, false
	}
	tok.startText = input[i:end]
	i = end
	if !strings.HasPrefix(input[i:], " --> ") {
		return token{}, false
	}
	i += len(" --> ")
	end, ok = scanTimestamp(input, i)
	if !ok {
		return token{}, false
	}
	tok.endText = input[i:end]
	i = end
	if i < len(input) && input[i] == ' ' {
		i++
	}
	propStart := i
	for i < len(input) && input[i] != '\n' {
		i++
	}
	tok.proprietary = input[propStart:i]
	if i >= len(input) {
		// the timing line ends the input: a block with empty content
		tok.spanEnd = i
		return tok, true
	}
	i++

	// content lines, until a boundary blank line or the end of the input;
	// non-boundary blank lines stay in the content
	var lines []string
	for i < len(input) {
		lineEnd := strings.IndexByte(input[i:], '\n')
		if lineEnd < 0 {
			lines = append(lines, input[i:])
			i = len(input)
			break
		}
		line := input[i : i+lineEnd]
		i += lineEnd + 1
		if line != "" {
			lines = append(lines, line)
			continue
		}
		if atBoundary(input, i) {
			break
		}
		lines = append(lines, "")
	}
	tok.content = strings.Join(lines, "\n")
	tok.spanEnd = i
	return tok, true
}

// atBoundary reports whether a blank line ending at position at may end a
// block: either the input ends, or the following lines look like a plausible
// next block, digits then a newline then the start of a timestamp.
func atBoundary(input string, at int) bool {
	if at >= len(input) {
		return true
	}
	end, ok := scanDigits(input, at)
	if !ok || end >= len(input) || input[end] != '\n' {
		return false
	}
	end, ok = scanDigits(input, end+1)
	return ok && end < len(input) && input[end] == ':'
}

// scanTimestamp matches digits ':' digits ':' digits [,.] digits and
// returns the offset just past the match.
func scanTimestamp(input string, at int) (int, bool) {
	i, ok := scanDigits(input, at)
	if !ok || i >= len(input) || input[i] != ':' {
		return 0, false
	}
	i, ok = scanDigits(input, i+1)
	if !ok || i >= len(input) || input[i] != ':' {
		return 0, false
	}
	i, ok = scanDigits(input, i+1)
	if !ok || i >= len(input) || (input[i] != ',' && input[i] != '.') {
		return 0, false
	}
	i, ok = scanDigits(input, i+1)
	if !ok {
		return 0, false
	}
	return i, true
}

// scanDigits consumes a run of ASCII digits and returns the offset past it.
func scanDigits(input string, at int) (int, bool) {
	i := at
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	return i, i > at
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
