package cli

import (
	"github.com/richwiss/srt/internal/logging"
	"github.com/richwiss/srt/internal/srt"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt",
	Short: "Parse, correct, and recompose SRT subtitle files",
	Long: `srt is a CLI tool for fixing SRT subtitle files.

It parses leniently (tolerating the format deviations found in real-world
files), applies a correction, and writes back legal SRT. Subcommands shift
all timestamps by a constant offset, fix linear drift from two reference
points, or just re-sort and renumber the subtitles.

All subcommands read from --input (default stdin) and write to --output
(default stdout).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
		srt.SetLogger(logger.Zap())
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("input", "i", "", "The file to process (default: stdin)")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "The file to write to (default: stdout)")
	rootCmd.PersistentFlags().
		Bool("no-strict", false, "Allow blank lines in output content, your media player may explode")
}
