package timecode

import (
	"errors"
	"math/big"
	"sort"
	"testing"
)

func TestSpliceSort(t *testing.T) {
	a := mustRange(t, "01:00:00:00", "01:00:10:00", Rate24, true)
	b := mustRange(t, "01:00:05:00", "01:00:20:00", Rate24, true)
	c := mustRange(t, "01:01:00:00", "01:01:10:00", Rate24, true)

	s := Splice{c, b, a}
	if s.Sorted() {
		t.Fatal("splice should start unsorted")
	}
	sort.Sort(s)
	if !s.Sorted() {
		t.Fatal("splice should be sorted after sorting")
	}
	if !s[0].Equal(a) || !s[2].Equal(c) {
		t.Fatalf("sort order wrong: %v", s)
	}
}

func TestSpliceSize(t *testing.T) {
	s := Splice{
		mustRange(t, "01:00:00:00", "01:00:10:00", Rate24, true),
		mustRange(t, "01:00:20:00", "01:00:25:00", Rate24, true),
		mustRange(t, "01:01:10:00", "01:01:00:00", Rate24, false),
	}
	if g := s.Size(); g.Cmp(big.NewRat(25, 1)) != 0 {
		t.Fatalf("size: have %s, want 25", g)
	}
}

func TestSpliceSpan(t *testing.T) {
	a := mustRange(t, "01:00:00:00", "01:00:10:00", Rate24, true)
	c := mustRange(t, "01:01:40:00", "01:01:50:00", Rate24, true)

	span, err := Splice{a, c}.Span()
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	if span == nil {
		t.Fatal("span of a non-empty splice should exist")
	}
	if g, e := span.Start().Render(SMPTE), "01:00:00:00"; g != e {
		t.Fatalf("start: have %q, want %q", g, e)
	}
	if g, e := span.Duration(), 110.0; g != e {
		t.Fatalf("duration: have %v, want %v", g, e)
	}

	if got, err := (Splice{}).Span(); err != nil || got != nil {
		t.Fatalf("empty splice: have %v %v, want nil nil", got, err)
	}

	mixed := Splice{a, mustRange(t, "01:00:00:00", "01:00:10:00", Rate25, true)}
	if _, err := mixed.Span(); !errors.Is(err, ErrFPS) {
		t.Fatalf("mixed rates: have %v, want ErrFPS", err)
	}
}

func TestSpliceIn(t *testing.T) {
	a := mustRange(t, "01:00:00:00", "01:00:10:00", Rate24, true)
	c := mustRange(t, "01:01:40:00", "01:01:50:00", Rate24, true)
	s := Splice{a, c}

	span, err := s.Span()
	if err != nil {
		t.Fatalf("span: %v", err)
	}
	if !s.In(*span) {
		t.Fatal("splice should fit its own span")
	}
	if s.In(a) {
		t.Fatal("splice should not fit inside one member")
	}
}
