package timecode

import (
	"fmt"
	"math/big"
)

// Format selects one of the seven textual timecode representations.
type Format string

const (
	SMPTE  Format = "smpte"  // 01:23:45:12 (non-drop) or 01:23:45;12 (drop-frame)
	SRT    Format = "srt"    // 01:23:45,678
	DLP    Format = "dlp"    // 01:23:45:102 (250 sub-frames per second)
	FFmpeg Format = "ffmpeg" // 01:23:45.67
	FCPX   Format = "fcpx"   // 1001/24000s
	Frame  Format = "frame"  // 1234
	Time   Format = "time"   // 1234.5
	Auto   Format = "auto"   // detect on parse, own format on render
)

func (f Format) valid() bool {
	switch f {
	case SMPTE, SRT, DLP, FFmpeg, FCPX, Frame, Time:
		return true
	}
	return false
}

// Timecode is an instant on a media timeline: an exact rational number
// of seconds plus the frame rate, numbering mode and format it was
// built with. The zero Timecode is 0s at 24fps.
//
// Timecodes are immutable values; every method returns a new one.
// In strict mode the timestamp is kept inside one 24-hour day, so
// 25:00:00:00 parses as 01:00:00:00 and negative instants wrap to the
// equivalent positive time of day.
type Timecode struct {
	t      *big.Rat
	rate   Rate
	format Format
	strict bool
}

// Parse builds a Timecode from a string, detecting the format.
func Parse(s string, r Rate, strict bool) (Timecode, error) {
	r = r.orDefault()
	f, err := detect(s, r.drop)
	if err != nil {
		return Timecode{}, err
	}
	tc, err := parseAs(s, f, r, strict)
	if err != nil {
		return Timecode{}, err
	}
	log.Debugf("timecode parsed: %s type=%s fps=%s strict=%t", s, f, r, strict)
	return tc, nil
}

// ParseAs builds a Timecode from a string in a declared format.
// Declaring Auto is the same as calling Parse.
func ParseAs(s string, f Format, r Rate, strict bool) (Timecode, error) {
	if f == Auto {
		return Parse(s, r, strict)
	}
	if !f.valid() {
		return Timecode{}, fmt.Errorf("%w: unknown format %q", ErrType, f)
	}
	return parseAs(s, f, r.orDefault(), strict)
}

// FromFrames builds a Timecode from a frame count. In strict mode the
// count is first reduced modulo one day of frames: a day of real
// frames (fps*86400) for drop-frame rates, a day of nominal frames
// otherwise.
func FromFrames(n int64, r Rate, strict bool) Timecode {
	r = r.orDefault()
	idx := new(big.Rat).SetInt64(n)
	if strict {
		idx = modRat(idx, frameDay(r))
	}
	t := idx.Quo(idx, r.fps)
	return Timecode{t: t, rate: r, format: Frame, strict: strict}
}

// FromSeconds builds a Timecode from a number of seconds. The float is
// taken at its decimal face value.
func FromSeconds(sec float64, r Rate, strict bool) Timecode {
	return fromRat(decRat(sec), r, strict)
}

// FromRational builds a Timecode from an exact number of seconds.
// This is the lossless constructor; the value is copied.
func FromRational(t *big.Rat, r Rate, strict bool) Timecode {
	return fromRat(new(big.Rat).Set(t), r, strict)
}

func fromRat(t *big.Rat, r Rate, strict bool) Timecode {
	if strict {
		t = wrap24(t)
	}
	return Timecode{t: t, rate: r.orDefault(), format: Time, strict: strict}
}

// frameDay is the strict-mode modulus for frame counts.
func frameDay(r Rate) *big.Rat {
	if r.drop {
		return new(big.Rat).Mul(r.fps, ratDay)
	}
	return new(big.Rat).SetInt64(r.nominal * secondsPerDay)
}

func (tc Timecode) val() *big.Rat {
	if tc.t == nil {
		return new(big.Rat)
	}
	return tc.t
}

// Rate returns the timecode's frame rate.
func (tc Timecode) Rate() Rate { return tc.rate.orDefault() }

// Format returns the representation used when rendering with Auto.
func (tc Timecode) Format() Format {
	if tc.format == "" {
		return Time
	}
	return tc.format
}

// Strict reports whether the timecode wraps inside one 24-hour day.
func (tc Timecode) Strict() bool { return tc.strict }

// Frames is the timestamp as a frame count, rounded to the nearest
// frame.
func (tc Timecode) Frames() int64 {
	return roundInt64(new(big.Rat).Mul(tc.val(), tc.Rate().fps))
}

// Seconds is the timestamp rounded to five decimal places. Use
// Rational for lossless access.
func (tc Timecode) Seconds() float64 {
	f, _ := round5(tc.val()).Float64()
	return f
}

// Rational returns a copy of the exact timestamp in seconds. This is
// the only lossless accessor.
func (tc Timecode) Rational() *big.Rat {
	return new(big.Rat).Set(tc.val())
}

// AudioSampleCount is the number of whole audio samples that fit in
// the timestamp at the given sample rate, computed in exact integer
// arithmetic so high sample rates do not drift.
func (tc Timecode) AudioSampleCount(sampleRate int64) int64 {
	t := tc.val()
	n := new(big.Int).Mul(t.Num(), big.NewInt(sampleRate))
	return new(big.Int).Div(n, t.Denom()).Int64()
}

// WithRate returns the timecode at a new frame rate. When requantize
// is set the timestamp snaps to the nearest frame boundary of the new
// rate; otherwise the instant is unchanged and may fall between
// frames.
func (tc Timecode) WithRate(r Rate, requantize bool) Timecode {
	out := tc
	out.rate = r.orDefault()
	if requantize {
		q := new(big.Rat).Mul(tc.val(), out.rate.fps)
		q = new(big.Rat).SetInt(roundInt(q))
		out.t = q.Quo(q, out.rate.fps)
	}
	return out
}

// WithFormat returns the timecode tagged with a new render format.
// When requantize is set the timestamp is re-read through that
// format's string form, losing any precision beyond the format's
// granularity. Unknown formats keep the current one with a warning.
func (tc Timecode) WithFormat(f Format, requantize bool) Timecode {
	out := tc
	if f.valid() {
		out.format = f
	} else {
		log.Warnf("no such format %q, keeping %q", f, tc.Format())
		f = tc.Format()
	}
	if requantize {
		rt, err := parseAs(tc.render(f, 0), f, out.Rate(), out.strict)
		if err == nil {
			out.t = rt.t
		} else {
			log.Warnf("requantize through %q failed: %v", f, err)
		}
	}
	return out
}

// WithStrict returns the timecode with the 24-hour wraparound mode
// changed. Enabling it wraps the timestamp; disabling it leaves an
// already-wrapped value where it is.
func (tc Timecode) WithStrict(strict bool) Timecode {
	if strict == tc.strict {
		return tc
	}
	out := tc
	out.strict = strict
	if strict {
		out.t = wrap24(tc.val())
	}
	return out
}

// String renders the timecode in its own format.
func (tc Timecode) String() string {
	return tc.Render(Auto)
}

// Describe returns a one-line diagnostic form, e.g.
// "01:00:00:00 smpte 24.00 NDF strict".
func (tc Timecode) Describe() string {
	mode := "lax"
	if tc.strict {
		mode = "strict"
	}
	return fmt.Sprintf("%s %s %s %s", tc.Render(Auto), tc.Format(), tc.Rate(), mode)
}
