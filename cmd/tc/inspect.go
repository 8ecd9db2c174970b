package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	timecode "github.com/cbsinteractive/timecode"
)

var inspectFlags struct {
	SampleRate int64
}

var inspectCmd = &cobra.Command{
	Use:   "inspect TIMECODE",
	Short: "Show every representation of a timecode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, strict, err := settings(cmd)
		if err != nil {
			return err
		}
		tc, err := timecode.Parse(args[0], rate, strict)
		if err != nil {
			return errors.Wrapf(err, "parsing %q", args[0])
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Field", "Value"})
		table.Append([]string{"input", args[0]})
		table.Append([]string{"detected", string(tc.Format())})
		table.Append([]string{"rate", tc.Rate().String()})
		table.Append([]string{"smpte", tc.Render(timecode.SMPTE)})
		table.Append([]string{"srt", tc.Render(timecode.SRT)})
		table.Append([]string{"dlp", tc.Render(timecode.DLP)})
		table.Append([]string{"ffmpeg", tc.Render(timecode.FFmpeg)})
		table.Append([]string{"fcpx", tc.Render(timecode.FCPX)})
		table.Append([]string{"frame", strconv.FormatInt(tc.Frames(), 10)})
		table.Append([]string{"seconds", fmt.Sprintf("%g", tc.Seconds())})
		table.Append([]string{"rational", tc.Rational().RatString()})
		table.Append([]string{
			fmt.Sprintf("samples @%d", inspectFlags.SampleRate),
			strconv.FormatInt(tc.AudioSampleCount(inspectFlags.SampleRate), 10),
		})
		table.Append([]string{"strict", strconv.FormatBool(tc.Strict())})
		table.Render()
		return nil
	},
}

func init() {
	inspectCmd.Flags().Int64Var(&inspectFlags.SampleRate, "sample-rate", 48000, "audio sample rate for the sample count row")
}
