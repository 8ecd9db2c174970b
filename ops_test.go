package timecode

import (
	"errors"
	"math/big"
	"testing"
)

// Repeated one-frame additions at an NTSC rate must stay exact; any
// float accumulation drifts off the frame grid long before 1000
// iterations.
func TestAddFramesExactAccumulation(t *testing.T) {
	tc := FromFrames(0, Rate2997DF, false)
	for i := 0; i < 1000; i++ {
		tc = tc.AddFrames(1)
	}
	if g, e := tc.Frames(), int64(1000); g != e {
		t.Fatalf("frames: have %d, want %d", g, e)
	}
	if g := tc.Rational(); g.Cmp(big.NewRat(1000*1001, 30000)) != 0 {
		t.Fatalf("timestamp: have %s, want 1001000/30000", g)
	}
}

func TestAddSub(t *testing.T) {
	a := mustParse(t, "01:00:00:00", Rate24, true)
	b := mustParse(t, "00:30:00:00", Rate24, true)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g, e := sum.Render(SMPTE), "01:30:00:00"; g != e {
		t.Fatalf("sum: have %q, want %q", g, e)
	}

	diff, err := b.Sub(a)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	// Strict results wrap below zero.
	if g, e := diff.Render(SMPTE), "23:30:00:00"; g != e {
		t.Fatalf("diff: have %q, want %q", g, e)
	}
}

func TestAddRequiresMatchingRates(t *testing.T) {
	a := FromFrames(0, Rate24, true)
	b := FromFrames(0, Rate25, true)
	if _, err := a.Add(b); !errors.Is(err, ErrOperator) {
		t.Fatalf("different speeds: have %v, want ErrOperator", err)
	}

	// Same speed but different numbering mode is still incompatible
	// for arithmetic, though fine for comparison.
	df := FromFrames(0, Rate2997DF, true)
	ndf := FromFrames(0, Rate2997NDF, true)
	if _, err := df.Add(ndf); !errors.Is(err, ErrOperator) {
		t.Fatalf("drop vs non-drop: have %v, want ErrOperator", err)
	}
	if _, err := df.Cmp(ndf); err != nil {
		t.Fatalf("comparison should allow drop vs non-drop: %v", err)
	}
}

func TestAddKeepsFormatAndStrict(t *testing.T) {
	a := mustParse(t, "00:00:01,000", Rate24, false)
	b := mustParse(t, "48", Rate24, true)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if g, e := sum.Format(), SRT; g != e {
		t.Fatalf("format: have %q, want %q", g, e)
	}
	if !sum.Strict() {
		t.Fatal("strictness should infect the result")
	}
	if g, e := sum.String(), "00:00:03,000"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}

func TestMulDiv(t *testing.T) {
	tc := FromSeconds(10, Rate24, false)
	if g, e := tc.Mul(big.NewRat(3, 2)).Seconds(), 15.0; g != e {
		t.Fatalf("mul: have %v, want %v", g, e)
	}
	half, err := tc.Div(big.NewRat(2, 1))
	if err != nil {
		t.Fatalf("div: %v", err)
	}
	if g, e := half.Seconds(), 5.0; g != e {
		t.Fatalf("div: have %v, want %v", g, e)
	}
	if _, err := tc.Div(new(big.Rat)); !errors.Is(err, ErrValue) {
		t.Fatalf("div by zero: have %v, want ErrValue", err)
	}
}

func TestNegStrictWraps(t *testing.T) {
	tc := mustParse(t, "01:00:00:00", Rate24, true)
	if g, e := tc.Neg().Render(SMPTE), "23:00:00:00"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
	lax := mustParse(t, "01:00:00:00", Rate24, false)
	if g, e := lax.Neg().Seconds(), -3600.0; g != e {
		t.Fatalf("lax: have %v, want %v", g, e)
	}
}

func TestCmpGranularity(t *testing.T) {
	a := FromRational(big.NewRat(1, 1), Rate24, false)
	b := FromRational(big.NewRat(100000001, 100000000), Rate24, false) // 1 + 1e-8
	c, err := a.Cmp(b)
	if err != nil {
		t.Fatalf("cmp: %v", err)
	}
	if c != 0 {
		t.Fatalf("differences below 1e-5 should compare equal, have %d", c)
	}
	eq, err := a.Equal(b)
	if err != nil || !eq {
		t.Fatalf("equal: have %v %v, want true", eq, err)
	}
}

func TestCmpScalars(t *testing.T) {
	tc := mustParse(t, "01:00:00:00", Rate24, true)
	if g := tc.CmpFrames(86400); g != 0 {
		t.Fatalf("frames: have %d, want 0", g)
	}
	if g := tc.CmpSeconds(3599.5); g != 1 {
		t.Fatalf("seconds: have %d, want 1", g)
	}
	if g := tc.CmpRational(big.NewRat(7201, 2)); g != -1 {
		t.Fatalf("rational: have %d, want -1", g)
	}
}
