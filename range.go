package timecode

import (
	"fmt"
	"iter"
	"math/big"
)

// Range is a directed time interval: an exact anchor point plus an
// exact, never-zero duration. A forward range spans
// [start, start+duration]; a backward one travels from start down to
// start-duration. With strict24 set the duration is capped at one day
// and a negative endpoint difference is read as crossing midnight.
//
// Ranges are immutable; every operation returns a new value.
type Range struct {
	start    *big.Rat
	duration *big.Rat
	forward  bool
	rate     Rate
	strict24 bool
}

// NewRange builds a Range between two timecode endpoints. The
// endpoints must tick at the same rate. The duration is end-start for
// a forward range and start-end for a backward one; under strict24 a
// negative raw duration is corrected by a day (midnight crossing).
func NewRange(start, end Timecode, forward, strict24 bool) (Range, error) {
	rate := start.Rate()
	if !rate.SameFPS(end.Rate()) {
		return Range{}, fmt.Errorf("%w: endpoints at %s and %s", ErrFPS, rate, end.Rate())
	}
	dur := new(big.Rat)
	if forward {
		dur.Sub(end.val(), start.val())
	} else {
		dur.Sub(start.val(), end.val())
	}
	if strict24 && dur.Sign() < 0 {
		dur.Add(dur, ratDay)
	}
	return newSpan(start.val(), dur, forward, rate, strict24)
}

// NewRangeSpan builds a Range directly from an exact start and
// duration in seconds.
func NewRangeSpan(start, duration *big.Rat, forward bool, r Rate, strict24 bool) (Range, error) {
	return newSpan(start, duration, forward, r.orDefault(), strict24)
}

// ParseRange builds a Range from two timecode strings at a shared
// rate.
func ParseRange(start, end string, r Rate, forward, strict24 bool) (Range, error) {
	s, err := Parse(start, r, true)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end, r, true)
	if err != nil {
		return Range{}, err
	}
	return NewRange(s, e, forward, strict24)
}

func newSpan(start, duration *big.Rat, forward bool, rate Rate, strict24 bool) (Range, error) {
	if duration.Sign() == 0 {
		return Range{}, fmt.Errorf("%w: zero-length range", ErrValue)
	}
	if strict24 && absRat(duration).Cmp(ratDay) > 0 {
		return Range{}, fmt.Errorf("%w: duration exceeds 24 hours", ErrValue)
	}
	return Range{
		start:    new(big.Rat).Set(start),
		duration: new(big.Rat).Set(duration),
		forward:  forward,
		rate:     rate.orDefault(),
		strict24: strict24,
	}, nil
}

func (r Range) startVal() *big.Rat {
	if r.start == nil {
		return new(big.Rat)
	}
	return r.start
}

func (r Range) durVal() *big.Rat {
	if r.duration == nil {
		return new(big.Rat)
	}
	return r.duration
}

// endRat derives the far endpoint; it is never stored.
func (r Range) endRat() *big.Rat {
	if r.forward {
		return new(big.Rat).Add(r.startVal(), r.durVal())
	}
	return new(big.Rat).Sub(r.startVal(), r.durVal())
}

// Start returns the anchor point as a Timecode.
func (r Range) Start() Timecode {
	return FromRational(r.startVal(), r.rate, true)
}

// End returns the far endpoint as a Timecode.
func (r Range) End() Timecode {
	return FromRational(r.endRat(), r.rate, true)
}

// StartRational returns a copy of the exact anchor point.
func (r Range) StartRational() *big.Rat {
	return new(big.Rat).Set(r.startVal())
}

// EndRational returns a copy of the exact far endpoint.
func (r Range) EndRational() *big.Rat {
	return r.endRat()
}

// DurationRational returns a copy of the exact signed duration.
func (r Range) DurationRational() *big.Rat {
	return new(big.Rat).Set(r.durVal())
}

// Duration is the interval length in seconds.
func (r Range) Duration() float64 {
	f, _ := absRat(r.durVal()).Float64()
	return f
}

// Frames is the interval length in frames at the range's rate.
func (r Range) Frames() int64 {
	return roundInt64(new(big.Rat).Mul(absRat(r.durVal()), r.Rate().fps))
}

// Forward reports the travel direction.
func (r Range) Forward() bool { return r.forward }

// Rate returns the range's frame rate.
func (r Range) Rate() Rate { return r.rate.orDefault() }

// Strict24 reports whether the range is constrained to one day.
func (r Range) Strict24() bool { return r.strict24 }

func (r Range) String() string {
	return fmt.Sprintf("(%s-%s)", r.Start(), r.End())
}

// coerceSeconds resolves an offset operand: floats and rationals are
// seconds, ints are frame counts, strings and Timecodes carry their
// own timestamp.
func (r Range) coerceSeconds(v any) (*big.Rat, error) {
	switch x := v.(type) {
	case Timecode:
		return x.Rational(), nil
	case *big.Rat:
		return new(big.Rat).Set(x), nil
	case float64:
		return decRat(x), nil
	case int:
		return FromFrames(int64(x), r.Rate(), true).Rational(), nil
	case int64:
		return FromFrames(x, r.Rate(), true).Rational(), nil
	case string:
		tc, err := Parse(x, r.Rate(), true)
		if err != nil {
			return nil, err
		}
		return tc.Rational(), nil
	}
	return nil, fmt.Errorf("unsupported operand %T", v)
}

// extendSeconds resolves an extend/shorten operand; unlike offsets,
// bare ints here are seconds.
func (r Range) extendSeconds(v any) (*big.Rat, error) {
	switch x := v.(type) {
	case int:
		return new(big.Rat).SetInt64(int64(x)), nil
	case int64:
		return new(big.Rat).SetInt64(x), nil
	}
	return r.coerceSeconds(v)
}

// Offset shifts the whole range, preserving its duration. Accepts
// seconds (float64, *big.Rat), frames (int, int64), a Timecode, or a
// parseable timecode string. Under strict24 the new anchor wraps at
// midnight.
func (r Range) Offset(v any) (Range, error) {
	d, err := r.coerceSeconds(v)
	if err != nil {
		return Range{}, fmt.Errorf("%w: offset value %v: %v", ErrMethod, v, err)
	}
	start := new(big.Rat).Add(r.startVal(), d)
	if r.strict24 {
		start = wrap24(start)
	}
	return newSpan(start, r.durVal(), r.forward, r.rate, r.strict24)
}

// Extend adjusts the duration by the given amount, keeping the anchor
// fixed. The amount is read on the forward axis: on a backward range
// its sign is inverted, so Extend(5) on a backward 10s range leaves
// 5s of travel.
func (r Range) Extend(v any) (Range, error) {
	d, err := r.extendSeconds(v)
	if err != nil {
		return Range{}, fmt.Errorf("%w: extend value %v: %v", ErrMethod, v, err)
	}
	if !r.forward {
		d.Neg(d)
	}
	dur := new(big.Rat).Add(r.durVal(), d)
	return newSpan(r.startVal(), dur, r.forward, r.rate, r.strict24)
}

// Shorten is Extend with a negated numeric amount.
func (r Range) Shorten(v any) (Range, error) {
	switch x := v.(type) {
	case int:
		return r.Extend(-x)
	case int64:
		return r.Extend(-x)
	case float64:
		return r.Extend(-x)
	}
	return r.Extend(v)
}

// Reverse anchors a new range at the far endpoint and flips the travel
// direction; the duration magnitude is unchanged.
func (r Range) Reverse() Range {
	out, _ := newSpan(r.endRat(), r.durVal(), !r.forward, r.rate, r.strict24)
	return out
}

// Retime scales the duration by an exact factor, keeping the anchor
// fixed. A zero factor is rejected.
func (r Range) Retime(factor *big.Rat) (Range, error) {
	if factor == nil || factor.Sign() == 0 {
		return Range{}, fmt.Errorf("%w: retime factor must be non-zero", ErrValue)
	}
	dur := new(big.Rat).Mul(r.durVal(), factor)
	return newSpan(r.startVal(), dur, r.forward, r.rate, r.strict24)
}

// Separate splits the range into n contiguous equal parts in travel
// order.
func (r Range) Separate(n int) ([]Range, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: must separate into at least 2 parts", ErrValue)
	}
	part := new(big.Rat).Quo(r.durVal(), new(big.Rat).SetInt64(int64(n)))
	out := make([]Range, 0, n)
	for i := 0; i < n; i++ {
		step := new(big.Rat).Mul(part, new(big.Rat).SetInt64(int64(i)))
		start := new(big.Rat)
		if r.forward {
			start.Add(r.startVal(), step)
		} else {
			start.Sub(r.startVal(), step)
		}
		p, err := newSpan(start, part, r.forward, r.rate, r.strict24)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Contains tests membership. A Timecode (or anything coercible to
// one: string, frame int, seconds float64, *big.Rat) is contained when
// it lies within the travel bounds, both ends inclusive. A Range is
// contained when both its endpoints are.
func (r Range) Contains(item any) (bool, error) {
	switch x := item.(type) {
	case Timecode:
		return r.containsRat(x.val()), nil
	case Range:
		return r.ContainsRange(x, false), nil
	case string:
		tc, err := Parse(x, r.Rate(), true)
		if err != nil {
			return false, fmt.Errorf("%w: contains item %q: %v", ErrType, x, err)
		}
		return r.containsRat(tc.val()), nil
	case int:
		return r.containsRat(FromFrames(int64(x), r.Rate(), true).val()), nil
	case int64:
		return r.containsRat(FromFrames(x, r.Rate(), true).val()), nil
	case float64:
		return r.containsRat(FromSeconds(x, r.Rate(), true).val()), nil
	case *big.Rat:
		return r.containsRat(FromRational(x, r.Rate(), true).val()), nil
	}
	return false, fmt.Errorf("%w: cannot test containment of %T", ErrType, item)
}

// ContainsRange reports whether o lies entirely inside r. With
// sameDirection set, an opposite-direction range is never contained.
func (r Range) ContainsRange(o Range, sameDirection bool) bool {
	if sameDirection && o.forward != r.forward {
		return false
	}
	return r.containsRat(o.startVal()) && r.containsRat(o.endRat())
}

func (r Range) containsRat(t *big.Rat) bool {
	start, end := r.startVal(), r.endRat()
	if r.forward {
		return start.Cmp(t) <= 0 && t.Cmp(end) <= 0
	}
	return end.Cmp(t) <= 0 && t.Cmp(start) <= 0
}

// Intersect returns the overlap of two ranges with the same direction
// and rate, or nil when they do not overlap. Touching at a single
// point is not overlap. The result is strict24 only if both inputs
// are.
func (r Range) Intersect(o Range) (*Range, error) {
	if err := r.comparable(o, "intersect"); err != nil {
		return nil, err
	}
	var start, end *big.Rat
	if r.forward {
		start = maxRat(r.startVal(), o.startVal())
		end = minRat(r.endRat(), o.endRat())
		if start.Cmp(end) >= 0 {
			return nil, nil
		}
	} else {
		start = minRat(r.startVal(), o.startVal())
		end = maxRat(r.endRat(), o.endRat())
		if start.Cmp(end) <= 0 {
			return nil, nil
		}
	}
	dur := new(big.Rat)
	if r.forward {
		dur.Sub(end, start)
	} else {
		dur.Sub(start, end)
	}
	out, err := newSpan(start, dur, r.forward, r.rate, r.strict24 && o.strict24)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Union spans two ranges that overlap or touch exactly at an
// endpoint; a genuine gap is an error. Direction and rate rules match
// Intersect's.
func (r Range) Union(o Range) (Range, error) {
	if err := r.comparable(o, "union"); err != nil {
		return Range{}, err
	}
	overlap, err := r.Intersect(o)
	if err != nil {
		return Range{}, err
	}
	if overlap == nil && !r.adjacent(o) {
		return Range{}, fmt.Errorf("%w: cannot union ranges separated by a gap", ErrMethod)
	}
	var start, end *big.Rat
	if r.forward {
		start = minRat(r.startVal(), o.startVal())
		end = maxRat(r.endRat(), o.endRat())
	} else {
		start = maxRat(r.startVal(), o.startVal())
		end = minRat(r.endRat(), o.endRat())
	}
	dur := new(big.Rat)
	if r.forward {
		dur.Sub(end, start)
	} else {
		dur.Sub(start, end)
	}
	return newSpan(start, dur, r.forward, r.rate, r.strict24 && o.strict24)
}

func (r Range) adjacent(o Range) bool {
	return r.endRat().Cmp(o.startVal()) == 0 || o.endRat().Cmp(r.startVal()) == 0
}

func (r Range) comparable(o Range, op string) error {
	if r.forward != o.forward {
		return fmt.Errorf("%w: cannot %s ranges with different directions", ErrMethod, op)
	}
	if !r.Rate().SameFPS(o.Rate()) {
		return fmt.Errorf("%w: cannot %s ranges at %s and %s", ErrFPS, op, r.Rate(), o.Rate())
	}
	return nil
}

// Add combines durations, direction-sensitively: a same-direction
// operand lengthens the range, an opposite-direction one shortens it.
// The anchor is kept.
func (r Range) Add(o Range) (Range, error) {
	if !r.Rate().SameFPS(o.Rate()) {
		return Range{}, fmt.Errorf("%w: cannot add ranges at %s and %s", ErrFPS, r.Rate(), o.Rate())
	}
	dur := new(big.Rat)
	if r.forward == o.forward {
		dur.Add(r.durVal(), o.durVal())
	} else {
		dur.Sub(r.durVal(), o.durVal())
	}
	return newSpan(r.startVal(), dur, r.forward, r.rate, r.strict24)
}

// Subtract is the inverse of Add: a same-direction operand shortens
// the range, an opposite-direction one lengthens it.
func (r Range) Subtract(o Range) (Range, error) {
	if !r.Rate().SameFPS(o.Rate()) {
		return Range{}, fmt.Errorf("%w: cannot subtract ranges at %s and %s", ErrFPS, r.Rate(), o.Rate())
	}
	dur := new(big.Rat)
	if r.forward == o.forward {
		dur.Sub(r.durVal(), o.durVal())
	} else {
		dur.Add(r.durVal(), o.durVal())
	}
	return newSpan(r.startVal(), dur, r.forward, r.rate, r.strict24)
}

// Equal reports exact structural equality: anchor, duration,
// direction and rate.
func (r Range) Equal(o Range) bool {
	return r.forward == o.forward &&
		r.Rate().SameFPS(o.Rate()) &&
		r.startVal().Cmp(o.startVal()) == 0 &&
		r.durVal().Cmp(o.durVal()) == 0
}

// Before orders ranges by anchor point.
func (r Range) Before(o Range) bool {
	return r.startVal().Cmp(o.startVal()) < 0
}

// Timecodes yields each frame instant from the anchor toward the far
// endpoint (exclusive), stepping exactly one frame at a time in the
// travel direction. Each call produces a fresh, finite sequence.
func (r Range) Timecodes() iter.Seq[Timecode] {
	return func(yield func(Timecode) bool) {
		step := new(big.Rat).Inv(r.Rate().fps)
		end := r.endRat()
		cur := new(big.Rat).Set(r.startVal())
		for {
			if r.forward && cur.Cmp(end) >= 0 {
				return
			}
			if !r.forward && cur.Cmp(end) <= 0 {
				return
			}
			if !yield(FromRational(cur, r.rate, true)) {
				return
			}
			if r.forward {
				cur = new(big.Rat).Add(cur, step)
			} else {
				cur = new(big.Rat).Sub(cur, step)
			}
		}
	}
}

func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return new(big.Rat).Set(a)
	}
	return new(big.Rat).Set(b)
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return new(big.Rat).Set(a)
	}
	return new(big.Rat).Set(b)
}
