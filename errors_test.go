package timecode

import (
	"errors"
	"testing"
)

// Every error kind must stay distinguishable so callers can branch on
// errors.Is without string matching.
func TestErrorKindsDistinct(t *testing.T) {
	kinds := []error{ErrType, ErrValue, ErrInitialization, ErrOperator, ErrMethod, ErrFPS}
	for i, a := range kinds {
		for j, b := range kinds {
			if g, e := errors.Is(a, b), i == j; g != e {
				t.Fatalf("errors.Is(%v, %v) = %v, want %v", a, b, g, e)
			}
		}
	}
}

func TestErrorsCarryKind(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  func() error
		want error
	}{
		{"unparseable input", func() error { _, err := Parse("junk!", Rate24, true); return err }, ErrType},
		{"separator conflict", func() error { _, err := Parse("01:00:00;00", Rate24, true); return err }, ErrInitialization},
		{"illegal frame", func() error { _, err := Parse("00:00:00:99", Rate24, true); return err }, ErrValue},
		{"mixed-rate arithmetic", func() error {
			_, err := FromFrames(0, Rate24, true).Add(FromFrames(0, Rate25, true))
			return err
		}, ErrOperator},
		{"mixed-rate range", func() error {
			a, _ := ParseRange("01:00:00:00", "01:00:10:00", Rate24, true, true)
			b, _ := ParseRange("01:00:00:00", "01:00:10:00", Rate25, true, true)
			_, err := a.Intersect(b)
			return err
		}, ErrFPS},
		{"gapped union", func() error {
			a, _ := ParseRange("01:00:00:00", "01:00:10:00", Rate24, true, true)
			b, _ := ParseRange("02:00:00:00", "02:00:10:00", Rate24, true, true)
			_, err := a.Union(b)
			return err
		}, ErrMethod},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.err(); !errors.Is(err, tc.want) {
				t.Fatalf("have %v, want %v", err, tc.want)
			}
		})
	}
}
