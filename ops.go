package timecode

import (
	"fmt"
	"math/big"
)

// derive builds the result of an arithmetic operation: same rate and
// format as the receiver, timestamp re-wrapped when strict, format
// re-tagged without requantization.
func (tc Timecode) derive(t *big.Rat, strict bool) Timecode {
	out := fromRat(t, tc.Rate(), strict)
	out.format = tc.Format()
	return out
}

// Add sums two timecodes. Both must share the exact frame rate and
// numbering mode; the result is strict if either operand is.
func (tc Timecode) Add(o Timecode) (Timecode, error) {
	if !tc.Rate().Equal(o.Rate()) {
		return Timecode{}, fmt.Errorf("%w: addition needs matching rates, have %s and %s", ErrOperator, tc.Rate(), o.Rate())
	}
	t := new(big.Rat).Add(tc.val(), o.val())
	return tc.derive(t, tc.strict || o.strict), nil
}

// Sub subtracts another timecode under the same compatibility rule as
// Add.
func (tc Timecode) Sub(o Timecode) (Timecode, error) {
	if !tc.Rate().Equal(o.Rate()) {
		return Timecode{}, fmt.Errorf("%w: subtraction needs matching rates, have %s and %s", ErrOperator, tc.Rate(), o.Rate())
	}
	t := new(big.Rat).Sub(tc.val(), o.val())
	return tc.derive(t, tc.strict || o.strict), nil
}

// AddFrames shifts the timecode by a number of frames at its own rate.
func (tc Timecode) AddFrames(n int64) Timecode {
	d := new(big.Rat).Quo(new(big.Rat).SetInt64(n), tc.Rate().fps)
	return tc.derive(d.Add(tc.val(), d), tc.strict)
}

// SubFrames shifts the timecode back by a number of frames.
func (tc Timecode) SubFrames(n int64) Timecode {
	return tc.AddFrames(-n)
}

// AddSeconds shifts the timecode by a decimal number of seconds.
func (tc Timecode) AddSeconds(sec float64) Timecode {
	return tc.derive(new(big.Rat).Add(tc.val(), decRat(sec)), tc.strict)
}

// SubSeconds shifts the timecode back by a decimal number of seconds.
func (tc Timecode) SubSeconds(sec float64) Timecode {
	return tc.AddSeconds(-sec)
}

// AddRational shifts the timecode by an exact number of seconds.
func (tc Timecode) AddRational(d *big.Rat) Timecode {
	return tc.derive(new(big.Rat).Add(tc.val(), d), tc.strict)
}

// SubRational shifts the timecode back by an exact number of seconds.
func (tc Timecode) SubRational(d *big.Rat) Timecode {
	return tc.derive(new(big.Rat).Sub(tc.val(), d), tc.strict)
}

// Mul scales the timestamp by an exact factor. Scaling one timecode by
// another has no meaning and is unrepresentable here by construction.
func (tc Timecode) Mul(factor *big.Rat) Timecode {
	return tc.derive(new(big.Rat).Mul(tc.val(), factor), tc.strict)
}

// Div scales the timestamp down by an exact factor.
func (tc Timecode) Div(factor *big.Rat) (Timecode, error) {
	if factor.Sign() == 0 {
		return Timecode{}, fmt.Errorf("%w: division by zero", ErrValue)
	}
	return tc.derive(new(big.Rat).Quo(tc.val(), factor), tc.strict), nil
}

// Neg negates the timestamp. In strict mode the result wraps to the
// equivalent positive time of day, so -01:00:00:00 is 23:00:00:00.
func (tc Timecode) Neg() Timecode {
	return tc.derive(new(big.Rat).Neg(tc.val()), tc.strict)
}

// Cmp orders two timecodes at five-decimal granularity. Their rates
// must tick at the same speed.
func (tc Timecode) Cmp(o Timecode) (int, error) {
	if !tc.Rate().SameFPS(o.Rate()) {
		return 0, fmt.Errorf("%w: comparison needs matching rates, have %s and %s", ErrOperator, tc.Rate(), o.Rate())
	}
	return round5(tc.val()).Cmp(round5(o.val())), nil
}

// Equal reports five-decimal equality under Cmp's rate rule.
func (tc Timecode) Equal(o Timecode) (bool, error) {
	c, err := tc.Cmp(o)
	return c == 0, err
}

// CmpFrames orders the timecode against a bare frame number.
func (tc Timecode) CmpFrames(n int64) int {
	f := tc.Frames()
	switch {
	case f < n:
		return -1
	case f > n:
		return 1
	}
	return 0
}

// CmpSeconds orders the timecode against a decimal number of seconds
// at five-decimal granularity.
func (tc Timecode) CmpSeconds(sec float64) int {
	return round5(tc.val()).Cmp(round5(decRat(sec)))
}

// CmpRational orders the timecode against an exact number of seconds
// at five-decimal granularity.
func (tc Timecode) CmpRational(x *big.Rat) int {
	return round5(tc.val()).Cmp(round5(x))
}
