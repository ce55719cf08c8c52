package srt

import "iter"

// Sequence is a lazy, pull-based stream of subtitles. An error element
// terminates the stream; no further values follow it. Sequences hold no
// state across invocations, so concurrent parses and composes over disjoint
// inputs are safe.
type Sequence = iter.Seq2[*Subtitle, error]

// FromSlice adapts a slice to the sequence form the pipelines consume.
func FromSlice(subs []*Subtitle) Sequence {
	return func(yield func(*Subtitle, error) bool) {
		for _, sub := range subs {
			if !yield(sub, nil) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice, stopping at the first error.
func Collect(subs Sequence) ([]*Subtitle, error) {
	var out []*Subtitle
	for sub, err := range subs {
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, nil
}
