package timecode

import (
	"testing"
)

func TestNewRateDropValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		rate Rate
		drop bool
	}{
		{"2997 keeps drop", NewRate(29.97, true), true},
		{"2997 keeps non-drop", NewRate(29.97, false), false},
		{"5994 keeps drop", NewRate(59.94, true), true},
		{"11988 keeps drop", NewRate(119.88, true), true},
		{"2398 forces drop", NewRate(23.98, false), true},
		{"23976 forces drop", NewRateRational(24000, 1001, false), true},
		{"24 forces non-drop", NewRate(24, true), false},
		{"25 forces non-drop", NewRate(25, true), false},
		{"30 forces non-drop", NewRate(30, true), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if g, e := tc.rate.DropFrame(), tc.drop; g != e {
				t.Fatalf("drop frame: have %v, want %v", g, e)
			}
		})
	}
}

func TestRateNominal(t *testing.T) {
	for _, tc := range []struct {
		rate Rate
		want int64
	}{
		{Rate24, 24},
		{Rate2997DF, 30},
		{Rate2997NDF, 30},
		{Rate5994DF, 60},
		{Rate23976, 24},
		{NewRateRational(120000, 1001, true), 120},
	} {
		if g, e := tc.rate.Nominal(), tc.want; g != e {
			t.Fatalf("%s: nominal have %d, want %d", tc.rate, g, e)
		}
	}
}

func TestRateCompat(t *testing.T) {
	if !Rate2997DF.SameFPS(Rate2997NDF) {
		t.Fatal("29.97 DF and NDF should tick at the same speed")
	}
	if Rate2997DF.Equal(Rate2997NDF) {
		t.Fatal("29.97 DF and NDF should not be fully equal")
	}
	if Rate24.SameFPS(Rate25) {
		t.Fatal("24 and 25 should not tick at the same speed")
	}
	// Decimal 29.97 is taken at face value, which is not the NTSC
	// fraction 30000/1001.
	if NewRate(29.97, true).SameFPS(Rate2997DF) {
		t.Fatal("decimal 29.97 should differ from 30000/1001")
	}
}

func TestRateZeroDefaults(t *testing.T) {
	var r Rate
	if g, e := r.Nominal(), int64(24); g != e {
		t.Fatalf("zero rate nominal: have %d, want %d", g, e)
	}
	if r.DropFrame() {
		t.Fatal("zero rate should be non-drop")
	}
}

func TestRateString(t *testing.T) {
	if g, e := Rate2997DF.String(), "29.97 DF"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
	if g, e := Rate24.String(), "24.00 NDF"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}
