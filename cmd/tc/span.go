package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	timecode "github.com/cbsinteractive/timecode"
)

var spanFlags struct {
	Backward   bool
	Split      int
	Offset     string
	Intersect  string
	ListFrames int
}

var spanCmd = &cobra.Command{
	Use:   "span START END",
	Short: "Describe the range between two timecodes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, strict, err := settings(cmd)
		if err != nil {
			return err
		}
		r, err := timecode.ParseRange(args[0], args[1], rate, !spanFlags.Backward, strict)
		if err != nil {
			return errors.Wrapf(err, "building range %q to %q", args[0], args[1])
		}

		if spanFlags.Offset != "" {
			r, err = r.Offset(offsetOperand(spanFlags.Offset))
			if err != nil {
				return errors.Wrap(err, "offsetting range")
			}
		}

		printRange(cmd, r)

		if spanFlags.Intersect != "" {
			o, err := parseRangeArg(spanFlags.Intersect, rate, !spanFlags.Backward, strict)
			if err != nil {
				return errors.Wrapf(err, "parsing --intersect %q", spanFlags.Intersect)
			}
			overlap, err := r.Intersect(o)
			if err != nil {
				return errors.Wrap(err, "intersecting ranges")
			}
			if overlap == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no overlap")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "overlap:")
				printRange(cmd, *overlap)
			}
		}

		if spanFlags.Split > 1 {
			parts, err := r.Separate(spanFlags.Split)
			if err != nil {
				return errors.Wrap(err, "splitting range")
			}
			for i, p := range parts {
				fmt.Fprintf(cmd.OutOrStdout(), "part %d: %s to %s (%d frames)\n",
					i+1, p.Start().Render(timecode.SMPTE), p.End().Render(timecode.SMPTE), p.Frames())
			}
		}

		if spanFlags.ListFrames > 0 {
			n := 0
			for tc := range r.Timecodes() {
				if n >= spanFlags.ListFrames {
					fmt.Fprintf(cmd.OutOrStdout(), "... %d more frames\n", r.Frames()-int64(n))
					break
				}
				fmt.Fprintln(cmd.OutOrStdout(), tc.Render(timecode.SMPTE))
				n++
			}
		}
		return nil
	},
}

func printRange(cmd *cobra.Command, r timecode.Range) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"start", r.Start().Render(timecode.SMPTE)})
	table.Append([]string{"end", r.End().Render(timecode.SMPTE)})
	table.Append([]string{"duration", fmt.Sprintf("%gs", r.Duration())})
	table.Append([]string{"frames", strconv.FormatInt(r.Frames(), 10)})
	table.Append([]string{"forward", strconv.FormatBool(r.Forward())})
	table.Render()
}

// offsetOperand picks the operand type the Range dispatch expects:
// a bare integer means frames, a decimal means seconds, anything else
// is parsed as a timecode string.
func offsetOperand(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseRangeArg reads a "start,end" pair.
func parseRangeArg(s string, r timecode.Rate, forward, strict bool) (timecode.Range, error) {
	start, end, ok := strings.Cut(s, ",")
	if !ok {
		return timecode.Range{}, errors.New("expected start,end")
	}
	return timecode.ParseRange(start, end, r, forward, strict)
}

func init() {
	spanCmd.Flags().BoolVar(&spanFlags.Backward, "backward", false, "travel from START down to END")
	spanCmd.Flags().IntVar(&spanFlags.Split, "split", 0, "split the range into this many equal parts")
	spanCmd.Flags().StringVar(&spanFlags.Offset, "offset", "", "shift the range first (frames, seconds or a timecode)")
	spanCmd.Flags().StringVar(&spanFlags.Intersect, "intersect", "", "intersect with a second range given as start,end")
	spanCmd.Flags().IntVar(&spanFlags.ListFrames, "list-frames", 0, "print up to this many frame timecodes of the range")
}
