package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/richwiss/srt/internal/srt"
	"github.com/spf13/cobra"
)

// processSubtitles runs the shared tool pipeline: open input, parse, apply
// an optional per-subtitle correction, compose, write. Corrections mutate
// the subtitle they are handed; the pipeline is lazy end to end, so parse
// errors surface mid-write exactly where they are detected.
func processSubtitles(cmd *cobra.Command, correct func(*srt.Subtitle)) (err error) {
	in, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	subs := srt.ParseReader(in)
	if correct != nil {
		subs = applyCorrection(subs, correct)
	}

	written, err := srt.ComposeTo(out, subs, composeOptions(cmd))
	if err != nil {
		return err
	}
	logger.Debugf("wrote %d subtitles", written)
	return nil
}

func applyCorrection(subs srt.Sequence, correct func(*srt.Subtitle)) srt.Sequence {
	return func(yield func(*srt.Subtitle, error) bool) {
		for sub, err := range subs {
			if err != nil {
				yield(nil, err)
				return
			}
			correct(sub)
			if !yield(sub, nil) {
				return
			}
		}
	}
}

func composeOptions(cmd *cobra.Command) srt.ComposeOptions {
	opts := srt.DefaultComposeOptions()
	if noStrict, _ := cmd.Flags().GetBool("no-strict"); noStrict {
		opts.Strict = false
	}
	return opts
}

func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

func openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

// nopWriteCloser keeps stdout open after the pipeline finishes with it.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
