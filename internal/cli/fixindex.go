package cli

import (
	"github.com/spf13/cobra"
)

var fixindexCmd = &cobra.Command{
	Use:   "fixindex",
	Short: "Sort subtitles by start time and renumber them",
	Long: `Re-sort subtitles by start time and rewrite their indices
sequentially from 1. Subtitles with no content are dropped. Useful after
hand-editing a file or concatenating two of them.

Example:
  srt fixindex -i merged.srt -o clean.srt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return processSubtitles(cmd, nil)
	},
}

func init() {
	rootCmd.AddCommand(fixindexCmd)
}
