package cli

import (
	"time"

	"github.com/richwiss/srt/internal/srt"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift",
	Short: "Shift every subtitle by a constant number of seconds",
	Long: `Shift the start and end time of every subtitle by a constant
offset. Use a negative value to make subtitles appear earlier.

Examples:
  srt shift --seconds 2.5 -i movie.srt -o fixed.srt
  srt shift --seconds -0.75 < movie.srt > fixed.srt`,
	Args: cobra.NoArgs,
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		Float64("seconds", 0, "How many seconds to shift (may be negative)")
	_ = shiftCmd.MarkFlagRequired("seconds")
}

func runShift(cmd *cobra.Command, args []string) error {
	seconds, _ := cmd.Flags().GetFloat64("seconds")
	offset := time.Duration(seconds * float64(time.Second))

	return processSubtitles(cmd, func(sub *srt.Subtitle) {
		sub.Start += offset
		sub.End += offset
	})
}
