package timecode

import (
	"math/big"
	"strconv"
)

const secondsPerDay = 86400

var (
	ratDay  = new(big.Rat).SetInt64(secondsPerDay)
	int100k = big.NewInt(100000)
	ratE5   = new(big.Rat).SetInt64(100000)
	intTwo  = big.NewInt(2)
)

// decRat converts a float to its decimal (not binary) rational form,
// so 29.97 becomes 2997/100 rather than a 52-bit denominator.
func decRat(f float64) *big.Rat {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'f', -1, 64))
	if !ok {
		// NaN or Inf; nothing sensible to do with either.
		return new(big.Rat)
	}
	return r
}

// roundInt rounds x to the nearest integer, halves away from zero.
func roundInt(x *big.Rat) *big.Int {
	quo, rem := new(big.Int).QuoRem(x.Num(), x.Denom(), new(big.Int))
	twice := new(big.Int).Abs(rem)
	twice.Mul(twice, intTwo)
	if twice.Cmp(x.Denom()) >= 0 {
		if x.Sign() < 0 {
			quo.Sub(quo, big.NewInt(1))
		} else {
			quo.Add(quo, big.NewInt(1))
		}
	}
	return quo
}

func roundInt64(x *big.Rat) int64 {
	return roundInt(x).Int64()
}

// floorInt returns the largest integer not greater than x.
func floorInt(x *big.Rat) *big.Int {
	q := new(big.Int).Div(x.Num(), x.Denom())
	return q
}

// round5 rounds x to five decimal places, the comparison and display
// granularity shared by all inexact accessors.
func round5(x *big.Rat) *big.Rat {
	scaled := new(big.Rat).Mul(x, ratE5)
	return new(big.Rat).SetFrac(roundInt(scaled), int100k)
}

// modRat reduces x into [0, m) using floored division. m must be
// positive.
func modRat(x, m *big.Rat) *big.Rat {
	q := new(big.Rat).Quo(x, m)
	f := new(big.Rat).SetInt(floorInt(q))
	f.Mul(f, m)
	return new(big.Rat).Sub(x, f)
}

// wrap24 reduces a timestamp into one 24-hour day.
func wrap24(t *big.Rat) *big.Rat {
	return modRat(t, ratDay)
}

func absRat(x *big.Rat) *big.Rat {
	return new(big.Rat).Abs(x)
}
