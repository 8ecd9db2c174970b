package timecode

import (
	"testing"
)

// The frames skipped at each minute boundary must reappear on render,
// so drop-frame numbering never shows the dropped numbers and never
// loses real time.
func TestRenderSMPTEDropFrameBoundaries(t *testing.T) {
	for _, tc := range []struct {
		frame int64
		want  string
	}{
		{0, "00:00:00;00"},
		{1797, "00:00:59;27"},
		{1798, "00:00:59;28"},
		{1799, "00:00:59;29"},
		{1800, "00:01:00;02"},
		{1801, "00:01:00;03"},
		{17982, "00:10:00;00"},
		{17982 + 1798, "00:10:59;28"},
		{17982 + 1800, "00:11:00;02"},
	} {
		out := FromFrames(tc.frame, Rate2997DF, false)
		if g, e := out.Render(SMPTE), tc.want; g != e {
			t.Fatalf("frame %d: have %q, want %q", tc.frame, g, e)
		}
	}
}

func TestRenderSMPTERoundTrip(t *testing.T) {
	rates := []Rate{Rate23976, Rate24, Rate25, Rate2997DF, Rate2997NDF, Rate30, Rate5994DF, NewRateRational(120000, 1001, true)}
	frames := []int64{0, 1, 1000, 86399, 107892, 2589407}
	for _, r := range rates {
		for _, n := range frames {
			tc := FromFrames(n, r, false)
			back, err := ParseAs(tc.Render(SMPTE), SMPTE, r, false)
			if err != nil {
				t.Fatalf("%s frame %d: reparse %q: %v", r, n, tc.Render(SMPTE), err)
			}
			if g, e := back.Frames(), n; g != e {
				t.Fatalf("%s frame %d: round trip gave %d via %q", r, n, g, tc.Render(SMPTE))
			}
		}
	}
}

func TestRenderClockCarry(t *testing.T) {
	tc := FromSeconds(0.999, Rate24, false)
	if g, e := tc.Render(FFmpeg), "00:00:01.00"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
	if g, e := tc.Render(SRT), "00:00:00,999"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}

func TestRenderHighRateFrameWidth(t *testing.T) {
	r := NewRateRational(120000, 1001, true)
	if g, e := FromFrames(5, r, false).Render(SMPTE), "00:00:00;005"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}

func TestRenderPart(t *testing.T) {
	tc := mustParse(t, "01:23:45:12", Rate24, true)
	for _, c := range []struct {
		part int
		want string
	}{
		{0, "01:23:45:12"},
		{1, "01"},
		{2, "23"},
		{3, "45"},
		{4, "12"},
		{7, "12"}, // out of range falls back to the last field
	} {
		if g, e := tc.RenderPart(SMPTE, c.part), c.want; g != e {
			t.Fatalf("part %d: have %q, want %q", c.part, g, e)
		}
	}
}

func TestRenderUnknownFormatFallsBack(t *testing.T) {
	tc := mustParse(t, "01:00:00:00", Rate24, true)
	if g, e := tc.Render("bogus"), "01:00:00:00"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}

func TestRenderFCPXInteger(t *testing.T) {
	tc := FromSeconds(3600, Rate24, false)
	if g, e := tc.Render(FCPX), "3600s"; g != e {
		t.Fatalf("have %q, want %q", g, e)
	}
}
