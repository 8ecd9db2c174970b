package timecode

import (
	"fmt"
	"math"
	"math/big"
)

// Rate is a frame rate plus its drop-frame numbering mode. The rate
// itself is held as an exact rational; Nominal is the rate rounded up
// to the next integer and drives all frame-bucket arithmetic.
//
// The zero Rate behaves as 24fps non-drop.
type Rate struct {
	fps     *big.Rat
	nominal int64
	drop    bool
}

// NewRate builds a Rate from a decimal frames-per-second value in the
// domain 0.01-999.99. The dropFrame flag is validated rather than
// trusted: 29.97-family rates (29.97, 59.94, 119.88, ...) keep the
// caller's flag, every other rate has the flag replaced by whether it
// is a 23.98-family rate. The asymmetry is deliberate and matches how
// NLE tooling treats 23.98 material.
func NewRate(fps float64, dropFrame bool) Rate {
	return rateFrom(decRat(fps), dropFrame)
}

// NewRateRational builds a Rate from an exact fraction, e.g.
// 30000/1001 for true NTSC 29.97. Drop-frame validation is the same
// as NewRate's.
func NewRateRational(num, den int64, dropFrame bool) Rate {
	return rateFrom(big.NewRat(num, den), dropFrame)
}

// Common broadcast and cinema rates.
var (
	Rate23976   = NewRateRational(24000, 1001, true)
	Rate24      = NewRate(24, false)
	Rate25      = NewRate(25, false)
	Rate2997DF  = NewRateRational(30000, 1001, true)
	Rate2997NDF = NewRateRational(30000, 1001, false)
	Rate30      = NewRate(30, false)
	Rate50      = NewRate(50, false)
	Rate5994DF  = NewRateRational(60000, 1001, true)
	Rate60      = NewRate(60, false)
)

func rateFrom(fps *big.Rat, dropFrame bool) Rate {
	return Rate{
		fps:     fps,
		nominal: ceilRat(fps),
		drop:    validDropFrame(fps, dropFrame),
	}
}

// validDropFrame applies the drop-frame validation rule on the rate
// rounded to two decimals (expressed in centi-fps so the multiple
// check stays in integers).
func validDropFrame(fps *big.Rat, dropFrame bool) bool {
	f, _ := fps.Float64()
	c := int64(math.Round(f * 100))
	if c <= 0 {
		return false
	}
	if c%2997 == 0 {
		return dropFrame
	}
	return c%2398 == 0
}

func ceilRat(x *big.Rat) int64 {
	q := new(big.Int).Div(x.Num(), x.Denom())
	if new(big.Int).Mod(x.Num(), x.Denom()).Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Int64()
}

// orDefault resolves the zero Rate to 24fps non-drop.
func (r Rate) orDefault() Rate {
	if r.fps == nil {
		return NewRate(24, false)
	}
	return r
}

// FPS returns the rate as a float. Use Rational when exactness
// matters.
func (r Rate) FPS() float64 {
	f, _ := r.orDefault().fps.Float64()
	return f
}

// Rational returns a copy of the exact rate.
func (r Rate) Rational() *big.Rat {
	return new(big.Rat).Set(r.orDefault().fps)
}

// Nominal is the rate rounded up to the next integer (29.97 -> 30).
func (r Rate) Nominal() int64 {
	return r.orDefault().nominal
}

// DropFrame reports whether timecodes at this rate use drop-frame
// numbering.
func (r Rate) DropFrame() bool {
	return r.drop
}

// SameFPS reports whether two rates tick at exactly the same speed,
// ignoring numbering mode.
func (r Rate) SameFPS(o Rate) bool {
	return r.orDefault().fps.Cmp(o.orDefault().fps) == 0
}

// Equal reports whether both the speed and the numbering mode match.
func (r Rate) Equal(o Rate) bool {
	return r.SameFPS(o) && r.drop == o.drop
}

func (r Rate) String() string {
	mode := "NDF"
	if r.drop {
		mode = "DF"
	}
	return fmt.Sprintf("%.2f %s", r.FPS(), mode)
}

// dropPerMin is the count of frame numbers skipped at each non-tenth
// minute boundary under drop-frame numbering.
func (r Rate) dropPerMin() int64 {
	return r.nominal / 30 * 2
}
