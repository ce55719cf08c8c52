package srt

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Subtitle is one parsed SRT block. Two subtitles are equal when all five
// fields are equal; the struct is comparable, so == and map keys behave that
// way. Ordering, where the pipelines need one, is by Start only.
//
// Indices are not required to be unique or monotonic on input; they stay
// untouched until SortAndReindex rewrites them.
type Subtitle struct {
	Index       int
	Start       time.Duration
	End         time.Duration
	Content     string
	Proprietary string
}

// Less orders subtitles by start time.
func (s *Subtitle) Less(other *Subtitle) bool {
	return s.Start < other.Start
}

// Block renders the subtitle as a single SRT block, including the trailing
// blank-line separator. With strict enabled the content is legalized first,
// since blank lines inside a block violate the SRT format.
func (s *Subtitle) Block(strict bool) string {
	content := s.Content
	if strict {
		content = MakeLegalContent(content)
	}

	proprietary := s.Proprietary
	if proprietary != "" {
		// proprietary text sits on the timing line, separated by a space
		proprietary = " " + proprietary
	}

	return fmt.Sprintf("%d\n%s --> %s%s\n%s\n\n",
		s.Index,
		EncodeTimestamp(s.Start),
		EncodeTimestamp(s.End),
		proprietary,
		content,
	)
}

// MakeLegalContent removes blank lines from subtitle content, including
// leading and trailing ones. The split is on the literal newline byte, not
// locale-aware line breaking. A change is never an error: it is reported as
// a warning through the package logger.
func MakeLegalContent(content string) string {
	lines := strings.Split(content, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}

	legal := strings.Join(kept, "\n")
	if legal != content {
		logger().Warn("legalized content",
			zap.String("original", content),
			zap.String("legalized", legal),
		)
	}
	return legal
}
