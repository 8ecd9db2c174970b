package timecode

import (
	"math/big"
	"sort"
)

// Splice is a list of Ranges, possibly ordered, possibly overlapping.
// It implements sort.Interface to assist with ordering cut lists.
type Splice []Range

func (s Splice) Len() int      { return len(s) }
func (s Splice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Splice) Less(i, j int) bool {
	c := s[i].startVal().Cmp(s[j].startVal())
	if c != 0 {
		return c < 0
	}
	return absRat(s[i].durVal()).Cmp(absRat(s[j].durVal())) < 0
}

// Sorted returns true if the splice is sorted
func (s Splice) Sorted() bool {
	return sort.IsSorted(s)
}

// Size returns the cumulative duration of the splice in exact seconds,
// summing magnitudes regardless of each range's direction.
func (s Splice) Size() *big.Rat {
	dt := new(big.Rat)
	for _, r := range s {
		dt.Add(dt, absRat(r.durVal()))
	}
	return dt
}

// Span returns the smallest Range that contains s. Every member must
// share a direction and rate; an empty splice spans nothing.
func (s Splice) Span() (*Range, error) {
	if s.Len() == 0 {
		return nil, nil
	}
	u := s[0]
	for _, r := range s[1:] {
		if err := u.comparable(r, "span"); err != nil {
			return nil, err
		}
	}
	start := u.startVal()
	end := u.endRat()
	strict := u.strict24
	for _, r := range s[1:] {
		if u.forward {
			start = minRat(start, r.startVal())
			end = maxRat(end, r.endRat())
		} else {
			start = maxRat(start, r.startVal())
			end = minRat(end, r.endRat())
		}
		strict = strict && r.strict24
	}
	dur := new(big.Rat)
	if u.forward {
		dur.Sub(end, start)
	} else {
		dur.Sub(start, end)
	}
	out, err := newSpan(start, dur, u.forward, u.rate, strict)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// In returns true if the splice is contained by r
func (s Splice) In(r Range) bool {
	for _, c := range s {
		if !r.ContainsRange(c, false) {
			return false
		}
	}
	return true
}
