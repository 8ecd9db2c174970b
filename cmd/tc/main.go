// Command tc converts, inspects and spans media timecodes from the
// shell. Defaults come from the environment (TC_FPS, TC_DROP_FRAME,
// TC_NON_STRICT, TC_LOG_LEVEL); flags override per invocation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	timecode "github.com/cbsinteractive/timecode"
	"github.com/cbsinteractive/timecode/internal/cliconfig"
)

var globalFlags struct {
	FPS       float64
	DropFrame bool
	NonStrict bool
	LogLevel  string
}

var rootCmd = &cobra.Command{
	Use:   "tc",
	Short: "tc converts and inspects media timecodes",
	Long: `tc is a command-line tool for frame-accurate timecode work.

It understands SMPTE (drop and non-drop), SRT, DLP, FFmpeg, FCPX
rational, frame-count and raw-second representations, and converts
between them without losing a frame.

Quick start:
  tc convert 01:00:00:00 --to frame      # frames at the ambient rate
  tc inspect 00:01:00;02 --fps 29.97 --drop-frame
  tc span 01:00:00:00 01:00:10:00        # duration between two points`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().Float64Var(&globalFlags.FPS, "fps", 0, "frame rate, e.g. 24 or 29.97 (default from TC_FPS)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.DropFrame, "drop-frame", false, "use drop-frame numbering")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NonStrict, "non-strict", false, "allow timecodes outside one 24-hour day")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "log level (default from TC_LOG_LEVEL)")

	rootCmd.AddCommand(convertCmd, inspectCmd, spanCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// settings resolves env config plus flag overrides into the rate and
// strictness every subcommand needs.
func settings(cmd *cobra.Command) (timecode.Rate, bool, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return timecode.Rate{}, false, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = globalFlags.FPS
	}
	if cmd.Flags().Changed("drop-frame") {
		cfg.DropFrame = globalFlags.DropFrame
	}
	if cmd.Flags().Changed("non-strict") {
		cfg.NonStrict = globalFlags.NonStrict
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = globalFlags.LogLevel
	}

	logger, err := cfg.Logger()
	if err != nil {
		return timecode.Rate{}, false, err
	}
	timecode.SetLogger(logger)

	return timecode.NewRate(cfg.FPS, cfg.DropFrame), !cfg.NonStrict, nil
}
