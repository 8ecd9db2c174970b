package timecode

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

func parseAs(s string, f Format, r Rate, strict bool) (Timecode, error) {
	switch f {
	case SMPTE:
		return parseSMPTE(s, r, strict)
	case SRT:
		return parseClock(s, SRT, reSRT, 1000, r, strict)
	case DLP:
		return parseClock(s, DLP, reDLP, 250, r, strict)
	case FFmpeg:
		return parseFFmpeg(s, r, strict)
	case FCPX:
		return parseFCPX(s, r, strict)
	case Frame:
		return parseFrame(s, r, strict)
	case Time:
		return parseTime(s, r, strict)
	}
	return Timecode{}, fmt.Errorf("%w: unknown format %q", ErrType, f)
}

// parseSMPTE converts HH:MM:SS:FF (or ;FF for drop-frame) into a
// frame index and then into seconds. The sign of a negative input is
// applied to the final timestamp, after the strict frame-count
// reduction; under strict mode the result then wraps back into the
// day, so -01:00:00:00 at 24fps is 23:00:00:00.
func parseSMPTE(s string, r Rate, strict bool) (Timecode, error) {
	m := reSMPTE.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not smpte", ErrType, s)
	}
	hh, mm, ss, ff := field(m[1]), field(m[2]), field(m[3]), field(m[4])
	if ff > r.nominal-1 {
		return Timecode{}, fmt.Errorf("%w: frame %d out of range at %s", ErrValue, ff, r)
	}

	var idx int64
	if !r.drop {
		idx = ff + r.nominal*(ss+60*mm+3600*hh)
	} else {
		dpm := r.dropPerMin()
		// Frame numbers skipped at each non-tenth minute do not
		// exist under drop-frame numbering. Rates below 30 nominal
		// carry the flag but skip nothing.
		if dpm > 0 && mm%10 != 0 && ss == 0 && (ff == 0 || ff == dpm-1) {
			return Timecode{}, fmt.Errorf("%w: %q does not exist in drop-frame numbering", ErrValue, s)
		}
		total := 60*hh + mm
		idx = (3600*hh+60*mm+ss)*r.nominal + ff - dpm*(total-total/10)
	}

	t := new(big.Rat).SetInt64(idx)
	if strict {
		t = modRat(t, frameDay(r))
	}
	t.Quo(t, r.fps)
	if strings.HasPrefix(s, "-") {
		t.Neg(t)
		if strict {
			t = wrap24(t)
		}
	}
	return Timecode{t: t, rate: r, format: SMPTE, strict: strict}, nil
}

// parseClock covers SRT and DLP, whose sub-second field is a fixed
// fraction of a second (1/1000 and 1/250 respectively). Neither format
// carries a frame rate, so the ambient one is simply recorded.
func parseClock(s string, f Format, re *regexp.Regexp, base int64, r Rate, strict bool) (Timecode, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not %s", ErrType, s, f)
	}
	log.Debugf("%s timecode has no rate, %s assigned", f, r)
	t := clockRat(field(m[1]), field(m[2]), field(m[3]), field(m[4]), base)
	return signedClock(t, s, f, r, strict), nil
}

func parseFFmpeg(s string, r Rate, strict bool) (Timecode, error) {
	m := reFFmpeg.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not ffmpeg", ErrType, s)
	}
	base := int64(1)
	for i := 0; i < len(m[4]); i++ {
		base *= 10
	}
	t := clockRat(field(m[1]), field(m[2]), field(m[3]), field(m[4]), base)
	return signedClock(t, s, FFmpeg, r, strict), nil
}

func parseFCPX(s string, r Rate, strict bool) (Timecode, error) {
	m := reFCPX.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not fcpx", ErrType, s)
	}
	num := field(m[1])
	den := int64(1)
	if m[2] != "" {
		den = field(m[2])
	}
	if den == 0 {
		return Timecode{}, fmt.Errorf("%w: zero denominator in %q", ErrValue, s)
	}
	t := big.NewRat(num, den)
	return signedClock(t, s, FCPX, r, strict), nil
}

// parseFrame reduces the signed frame count modulo one day of frames
// in strict mode, exactly as FromFrames does, so negative counts land
// on the equivalent positive frame.
func parseFrame(s string, r Rate, strict bool) (Timecode, error) {
	m := reFrame.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not a frame count", ErrType, s)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Timecode{}, fmt.Errorf("%w: frame count %q: %v", ErrValue, s, err)
	}
	out := FromFrames(n, r, strict)
	return out, nil
}

func parseTime(s string, r Rate, strict bool) (Timecode, error) {
	m := reTime.FindStringSubmatch(s)
	if m == nil {
		return Timecode{}, fmt.Errorf("%w: %q is not a timestamp", ErrType, s)
	}
	t, ok := new(big.Rat).SetString(m[1])
	if !ok {
		return Timecode{}, fmt.Errorf("%w: timestamp %q", ErrValue, s)
	}
	if strict {
		t = wrap24(t)
	}
	return Timecode{t: t, rate: r, format: Time, strict: strict}, nil
}

// clockRat assembles hh:mm:ss plus sub/base seconds exactly.
func clockRat(hh, mm, ss, sub, base int64) *big.Rat {
	t := new(big.Rat).SetInt64(hh*3600 + mm*60 + ss)
	return t.Add(t, big.NewRat(sub, base))
}

// signedClock applies the leading-minus sign and then the strict
// wraparound, the one consistent order used for every clock-shaped
// format.
func signedClock(t *big.Rat, s string, f Format, r Rate, strict bool) Timecode {
	if strings.HasPrefix(s, "-") {
		t.Neg(t)
	}
	if strict {
		t = wrap24(t)
	}
	return Timecode{t: t, rate: r, format: f, strict: strict}
}

// field parses a matched digit group; groups are regexp-validated so
// the error path is unreachable.
func field(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
