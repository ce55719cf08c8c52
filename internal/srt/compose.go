package srt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ComposeOptions control how a sequence of subtitles is serialized.
type ComposeOptions struct {
	// Reindex sorts by start time and renumbers before composing.
	Reindex bool
	// StartIndex is the first index assigned when reindexing.
	StartIndex int
	// Strict legalizes each block's content, stripping blank lines.
	Strict bool
	// InPlace makes reindexing mutate the caller's subtitles instead of
	// yielding copies. See SortAndReindex.
	InPlace bool
}

// DefaultComposeOptions are the options most callers want: sort and renumber
// from 1, and emit only legal content.
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{Reindex: true, StartIndex: 1, Strict: true}
}

// SortAndReindex reorders subtitles by start time and rewrites their indices
// sequentially from startIndex. The sort is stable: subtitles sharing a
// start time keep their relative input order. Subtitles whose content is
// empty or whitespace-only are dropped, consume no index, and leave no gap;
// each drop is logged as a warning, never an error.
//
// The input is gathered eagerly (sorting needs all of it) but the output is
// yielded lazily. By default every yielded subtitle is a fresh copy and the
// caller's values are untouched. With inPlace the caller's own subtitles are
// mutated and yielded, which is faster but aliases anything still holding
// the pre-reindex values.
func SortAndReindex(subs Sequence, startIndex int, inPlace bool) Sequence {
	return func(yield func(*Subtitle, error) bool) {
		collected, err := Collect(subs)
		if err != nil {
			yield(nil, err)
			return
		}
		sort.SliceStable(collected, func(i, j int) bool {
			return collected[i].Less(collected[j])
		})

		next := startIndex
		for _, sub := range collected {
			if strings.TrimSpace(sub.Content) == "" {
				// contentless subtitles serve no purpose and can
				// confuse media player parsers
				logger().Warn("skipped contentless subtitle",
					zap.Int("index", sub.Index),
				)
				continue
			}
			if !inPlace {
				copied := *sub
				sub = &copied
			}
			sub.Index = next
			next++
			if !yield(sub, nil) {
				return
			}
		}
	}
}

// Compose serializes a sequence of subtitles into a single SRT string. With
// the default options, composing the parse of an already well-formed,
// already-legal, already-ordered text reproduces it exactly.
func Compose(subs Sequence, opts ComposeOptions) (string, error) {
	var b strings.Builder
	if _, err := ComposeTo(&b, subs, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ComposeTo streams SRT blocks to w as the input sequence is pulled, and
// returns how many subtitles were written. Nothing is buffered beyond one
// block, so arbitrarily large sequences stream through.
func ComposeTo(w io.Writer, subs Sequence, opts ComposeOptions) (int, error) {
	if opts.Reindex {
		subs = SortAndReindex(subs, opts.StartIndex, opts.InPlace)
	}

	written := 0
	for sub, err := range subs {
		if err != nil {
			return written, err
		}
		if _, err := io.WriteString(w, sub.Block(opts.Strict)); err != nil {
			return written, fmt.Errorf("writing subtitle block: %w", err)
		}
		written++
	}
	return written, nil
}
