package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	timecode "github.com/cbsinteractive/timecode"
)

var convertFlags struct {
	From string
	To   string
	Part int
}

var convertCmd = &cobra.Command{
	Use:   "convert TIMECODE",
	Short: "Convert a timecode between representations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, strict, err := settings(cmd)
		if err != nil {
			return err
		}
		tc, err := timecode.ParseAs(args[0], timecode.Format(convertFlags.From), rate, strict)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), tc.RenderPart(timecode.Format(convertFlags.To), convertFlags.Part))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFlags.From, "from", string(timecode.Auto), "input format (auto, smpte, srt, dlp, ffmpeg, fcpx, frame, time)")
	convertCmd.Flags().StringVar(&convertFlags.To, "to", string(timecode.SMPTE), "output format")
	convertCmd.Flags().IntVar(&convertFlags.Part, "part", 0, "print one field of the output (1-4, 0 for the full string)")
}
