package daterange

import (
	"testing"
	"time"
)

var chicago = time.FixedZone("CDT", -5*3600)

func at(year int, month time.Month, d, h int) time.Time {
	return time.Date(year, month, d, h, 0, 0, 0, chicago)
}

func assertRange(t *testing.T, got Range, wantStart, wantEnd time.Time) {
	t.Helper()
	if !got.Start.Equal(wantStart) || !got.End.Equal(wantEnd) {
		t.Fatalf("range = [%v, %v), want [%v, %v)", got.Start, got.End, wantStart, wantEnd)
	}
}

func TestResolveToday(t *testing.T) {
	// Mid-afternoon still covers the whole calendar day.
	now := at(2024, time.June, 10, 15)
	r, ok := Resolve(FilterToday, now)
	if !ok {
		t.Fatalf("today should resolve")
	}
	assertRange(t, r, at(2024, time.June, 10, 0), at(2024, time.June, 11, 0))
}

func TestResolveWeek(t *testing.T) {
	// Monday runs through end of Sunday.
	r, ok := Resolve(FilterWeek, at(2024, time.June, 10, 15))
	if !ok {
		t.Fatalf("week should resolve")
	}
	assertRange(t, r, at(2024, time.June, 10, 0), at(2024, time.June, 16, 0))

	// A Sunday now runs through the following Sunday.
	r, _ = Resolve(FilterWeek, at(2024, time.June, 9, 15))
	assertRange(t, r, at(2024, time.June, 9, 0), at(2024, time.June, 16, 0))
}

func TestResolveWeekend(t *testing.T) {
	// Wednesday points at the upcoming Saturday through Monday 00:00.
	r, ok := Resolve(FilterWeekend, at(2024, time.June, 12, 9))
	if !ok {
		t.Fatalf("weekend should resolve")
	}
	assertRange(t, r, at(2024, time.June, 15, 0), at(2024, time.June, 17, 0))
}

func TestResolveWeekendOnSaturday(t *testing.T) {
	r, _ := Resolve(FilterWeekend, at(2024, time.June, 15, 10))
	assertRange(t, r, at(2024, time.June, 15, 0), at(2024, time.June, 17, 0))
}

func TestResolveWeekendOnSunday(t *testing.T) {
	// Sunday belongs to the weekend already underway, clamped to today.
	r, _ := Resolve(FilterWeekend, at(2024, time.June, 16, 10))
	assertRange(t, r, at(2024, time.June, 16, 0), at(2024, time.June, 17, 0))
}

func TestResolveMonth(t *testing.T) {
	r, ok := Resolve(FilterMonth, at(2024, time.June, 10, 15))
	if !ok {
		t.Fatalf("month should resolve")
	}
	assertRange(t, r, at(2024, time.June, 10, 0), at(2024, time.July, 2, 0))
}

func TestResolveAnytimeHasNoBound(t *testing.T) {
	if _, ok := Resolve(FilterAnytime, at(2024, time.June, 10, 15)); ok {
		t.Fatalf("anytime should not resolve to a range")
	}
	if _, ok := Resolve(FilterCustom, at(2024, time.June, 10, 15)); ok {
		t.Fatalf("custom needs explicit dates")
	}
}

func TestResolveCustomIsInclusiveOfEndDay(t *testing.T) {
	r := ResolveCustom(at(2024, time.June, 10, 14), at(2024, time.June, 12, 9))
	assertRange(t, r, at(2024, time.June, 10, 0), at(2024, time.June, 13, 0))
}

func TestRangeContainsIsHalfOpen(t *testing.T) {
	r := Range{Start: at(2024, time.June, 10, 0), End: at(2024, time.June, 11, 0)}
	if !r.Contains(r.Start) {
		t.Fatalf("start should be inside")
	}
	if r.Contains(r.End) {
		t.Fatalf("end should be outside")
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"today":    FilterToday,
		"week":     FilterWeek,
		"weekend":  FilterWeekend,
		"month":    FilterMonth,
		"custom":   FilterCustom,
		"anytime":  FilterAnytime,
		"":         FilterAnytime,
		"nonsense": FilterAnytime,
	}
	for in, want := range cases {
		if got := ParseFilter(in); got != want {
			t.Fatalf("ParseFilter(%q) = %q, want %q", in, got, want)
		}
	}
}
