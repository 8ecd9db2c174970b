package timecode

import (
	"fmt"
	"math/big"
	"strconv"
)

var rat100 = new(big.Rat).SetInt64(100)

// Render formats the timecode. Auto renders in the timecode's own
// format; an unknown format falls back to SMPTE with a warning rather
// than failing.
func (tc Timecode) Render(f Format) string {
	return tc.render(f, 0)
}

// RenderPart returns one field of a multi-field rendering: 1 hours,
// 2 minutes, 3 seconds, 4 frames or sub-seconds. Part 0 is the full
// string. A part outside the format's range returns the last field
// with a warning.
func (tc Timecode) RenderPart(f Format, part int) string {
	return tc.render(f, part)
}

func (tc Timecode) render(f Format, part int) string {
	if f == Auto || f == "" {
		f = tc.Format()
	}
	switch f {
	case SMPTE:
		return tc.renderSMPTE(part)
	case SRT:
		return tc.renderClock(1000, ",", 3, part)
	case DLP:
		return tc.renderClock(250, ":", 3, part)
	case FFmpeg:
		return tc.renderClock(100, ".", 2, part)
	case FCPX:
		return tc.renderFCPX(part)
	case Frame:
		return tc.single(Frame, strconv.FormatInt(tc.Frames(), 10), part)
	case Time:
		return tc.single(Time, strconv.FormatFloat(tc.Seconds(), 'f', -1, 64), part)
	}
	log.Warnf("no such destination format %q, rendering smpte", f)
	return tc.renderSMPTE(part)
}

// renderSMPTE turns the timestamp back into a frame index and, for
// drop-frame rates, re-inflates it to the nominal numbering by adding
// back the frames skipped in every elapsed minute block.
func (tc Timecode) renderSMPTE(part int) string {
	r := tc.Rate()
	idx := roundInt64(new(big.Rat).Mul(tc.val(), r.fps))
	neg := idx < 0
	if neg {
		idx = -idx
	}

	if r.drop {
		dpm := r.dropPerMin()
		per10 := r.nominal*600 - 9*dpm
		d, m := idx/per10, idx%per10
		idx += 9 * dpm * d
		// Partial block past the last ten-minute boundary; the first
		// minute of a block drops nothing, truncating division keeps
		// that case at zero.
		idx += dpm * ((m - dpm) / (r.nominal*60 - dpm))
	}

	hh := idx / (3600 * r.nominal)
	rem := idx % (3600 * r.nominal)
	mm := rem / (60 * r.nominal)
	rem %= 60 * r.nominal
	ss := rem / r.nominal
	ff := rem % r.nominal

	ffWidth := 2
	if r.fps.Cmp(rat100) >= 0 {
		ffWidth = 3
	}
	sign := ""
	if neg {
		sign = "-"
	}
	parts := [4]string{
		fmt.Sprintf("%s%02d", sign, hh),
		fmt.Sprintf("%02d", mm),
		fmt.Sprintf("%02d", ss),
		fmt.Sprintf("%0*d", ffWidth, ff),
	}
	sep := ":"
	if r.drop {
		sep = ";"
	}
	full := fmt.Sprintf("%s:%s:%s%s%s", parts[0], parts[1], parts[2], sep, parts[3])
	return pick(parts, full, part)
}

// renderClock covers the SRT, DLP and FFmpeg shapes: clock fields plus
// a rounded sub-second field in the format's base. Rounding can push
// the sub-second field to the base itself, so the carry is propagated
// explicitly instead of ever printing e.g. 60 hundredths.
func (tc Timecode) renderClock(base int64, sep string, subWidth, part int) string {
	t := tc.val()
	neg := t.Sign() < 0
	a := absRat(t)

	secs := floorInt(a).Int64()
	frac := new(big.Rat).Sub(a, new(big.Rat).SetInt64(secs))
	sub := roundInt64(frac.Mul(frac, new(big.Rat).SetInt64(base)))
	if sub >= base {
		secs += sub / base
		sub %= base
	}

	sign := ""
	if neg {
		sign = "-"
	}
	parts := [4]string{
		fmt.Sprintf("%s%02d", sign, secs/3600),
		fmt.Sprintf("%02d", secs%3600/60),
		fmt.Sprintf("%02d", secs%60),
		fmt.Sprintf("%0*d", subWidth, sub),
	}
	full := fmt.Sprintf("%s:%s:%s%s%s", parts[0], parts[1], parts[2], sep, parts[3])
	return pick(parts, full, part)
}

func (tc Timecode) renderFCPX(part int) string {
	if part != 0 {
		log.Warnf("format %q has only one part", FCPX)
	}
	t := tc.val()
	if t.IsInt() {
		return fmt.Sprintf("%ss", t.Num())
	}
	return fmt.Sprintf("%s/%ss", t.Num(), t.Denom())
}

func (tc Timecode) single(f Format, s string, part int) string {
	if part != 0 {
		log.Warnf("format %q has only one part", f)
	}
	return s
}

func pick(parts [4]string, full string, part int) string {
	switch {
	case part == 0:
		return full
	case part >= 1 && part <= 4:
		return parts[part-1]
	}
	log.Warnf("no such part %d, returning the last part", part)
	return parts[3]
}
