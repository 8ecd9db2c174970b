package timecode

import (
	"fmt"
	"regexp"
)

// Anchored grammars for the seven textual formats. Field widths and
// separators are load-bearing: the separator before the frame field is
// the only thing that distinguishes drop-frame from non-drop SMPTE,
// and the DLP sub-frame field is bounded at 250.
var (
	reSMPTENDF = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d):(\d{2,3})$`)
	reSMPTEDF  = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d);(\d{2,3})$`)
	reSMPTE    = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d)[:;](\d{2,3})$`)
	reSRT      = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d),(\d{3})$`)
	reFFmpeg   = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d)\.(\d+)$`)
	reDLP      = regexp.MustCompile(`^-?(\d{2}):([0-5]?\d):([0-5]?\d):([01]\d\d|2[0-4]\d|250)$`)
	reFCPX     = regexp.MustCompile(`^-?(\d+)(?:/(\d+))?s$`)
	reFrame    = regexp.MustCompile(`^(-?\d+)f?$`)
	reTime     = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)s?$`)
)

// detect classifies a timecode string. The trial order resolves
// grammar overlaps: both SMPTE variants go first, then SRT, FFmpeg,
// FCPX, frame and finally bare seconds. DLP is never auto-detected
// because its grammar is a subset of three-digit SMPTE NDF; callers
// must declare it.
//
// dropFrame is the (already validated) flag the Timecode is being
// built with; an SMPTE match whose separator contradicts it is an
// initialization error, not a reclassification.
func detect(s string, dropFrame bool) (Format, error) {
	switch {
	case reSMPTENDF.MatchString(s):
		if dropFrame {
			return "", fmt.Errorf("%w: %q is non-drop but drop_frame is set", ErrInitialization, s)
		}
		return SMPTE, nil
	case reSMPTEDF.MatchString(s):
		if !dropFrame {
			return "", fmt.Errorf("%w: %q is drop-frame but drop_frame is not set", ErrInitialization, s)
		}
		return SMPTE, nil
	case reSRT.MatchString(s):
		return SRT, nil
	case reFFmpeg.MatchString(s):
		return FFmpeg, nil
	case reFCPX.MatchString(s):
		return FCPX, nil
	case reFrame.MatchString(s):
		return Frame, nil
	case reTime.MatchString(s):
		return Time, nil
	}
	return "", fmt.Errorf("%w: unrecognized timecode %q", ErrType, s)
}
