package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/richwiss/srt/internal/srt"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fix linear drift using two reference points",
	Long: `Fix subtitles that drift out of sync at a constant rate, for
example after a frame-rate conversion. Pick two points in the file, note the
timestamp where each subtitle currently appears (--f1, --f2) and where it
should appear (--t1, --t2), and every timestamp is remapped along the line
through those two points.

Timestamps use SRT form, e.g. 00:01:02,500.

Example:
  srt sync --f1 00:00:10,500 --t1 00:00:10,000 \
           --f2 01:30:00,000 --t2 01:29:00,000 -i movie.srt -o fixed.srt`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().String("f1", "", "The first desynchronized timestamp")
	syncCmd.Flags().String("t1", "", "The first synchronized timestamp")
	syncCmd.Flags().String("f2", "", "The second desynchronized timestamp")
	syncCmd.Flags().String("t2", "", "The second synchronized timestamp")
	for _, name := range []string{"f1", "t1", "f2", "t2"} {
		_ = syncCmd.MarkFlagRequired(name)
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	var ref [4]time.Duration
	for i, name := range []string{"f1", "t1", "f2", "t2"} {
		value, _ := cmd.Flags().GetString(name)
		d, err := srt.DecodeTimestamp(value)
		if err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
		ref[i] = d
	}

	angular, linear, err := fitCorrection(ref[0], ref[1], ref[2], ref[3])
	if err != nil {
		return err
	}
	logger.Debugf("correction: angular=%v linear=%vms", angular, linear)

	return processSubtitles(cmd, func(sub *srt.Subtitle) {
		sub.Start = remap(sub.Start, angular, linear)
		sub.End = remap(sub.End, angular, linear)
	})
}

// fitCorrection fits the affine map (in milliseconds) that takes f1 to t1
// and f2 to t2.
func fitCorrection(f1, t1, f2, t2 time.Duration) (angular, linear float64, err error) {
	if f1 == f2 {
		return 0, 0, fmt.Errorf("desynchronized reference timestamps must differ, both are %s",
			srt.EncodeTimestamp(f1))
	}
	angular = float64(t2-t1) / float64(f2-f1)
	linear = float64(t2.Milliseconds()) - angular*float64(f2.Milliseconds())
	return angular, linear, nil
}

// remap applies the affine correction to one timestamp, rounding to the
// nearest millisecond.
func remap(d time.Duration, angular, linear float64) time.Duration {
	msecs := math.Round(float64(d.Milliseconds())*angular + linear)
	return time.Duration(msecs) * time.Millisecond
}
