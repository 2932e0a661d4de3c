package ticketing

import (
	"testing"
	"time"

	"datenight/internal/model"
)

func classified(segment, genre string) []apiClassification {
	cls := apiClassification{}
	if segment != "" {
		cls.Segment = &apiGenre{Name: segment}
	}
	if genre != "" {
		cls.Genre = &apiGenre{Name: genre}
	}
	return []apiClassification{cls}
}

func TestToEventDefaults(t *testing.T) {
	fallback := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ev := apiEvent{ID: "abc", Name: "Mystery Show"}.toEvent(fallback)

	if ev.ID != "tm_abc" {
		t.Fatalf("ID = %q", ev.ID)
	}
	if ev.Venue != "TBA" || ev.Time != "TBA" {
		t.Fatalf("venue/time = %q/%q, want TBA/TBA", ev.Venue, ev.Time)
	}
	if ev.Price != "See tickets" {
		t.Fatalf("price = %q", ev.Price)
	}
	if !ev.Date.Equal(fallback) {
		t.Fatalf("date = %v, want fallback", ev.Date)
	}
	if ev.Category != model.CategoryAll {
		t.Fatalf("category = %q, want All", ev.Category)
	}
	if ev.Source != model.SourceAPI || ev.TotalShowCount != 1 {
		t.Fatalf("source/count = %q/%d", ev.Source, ev.TotalShowCount)
	}
}

func TestToEventParsesDateAndVenue(t *testing.T) {
	e := apiEvent{
		ID:   "abc",
		Name: "Jazz Night",
		Dates: &apiDates{Start: &apiStart{
			DateTime:  "2025-06-10T19:00:00Z",
			LocalTime: "19:00:00",
		}},
		Embedded:    &apiEventVenues{Venues: []apiVenue{{Name: "Blue Note"}}},
		PriceRanges: []apiPriceRange{{Min: 25.5, Max: 80}},
	}

	ev := e.toEvent(time.Now())
	want := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	if !ev.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", ev.Date, want)
	}
	if ev.Time != "7:00 PM" {
		t.Fatalf("time = %q", ev.Time)
	}
	if ev.Venue != "Blue Note" {
		t.Fatalf("venue = %q", ev.Venue)
	}
	if ev.Price != "$25" {
		t.Fatalf("price = %q", ev.Price)
	}
}

func TestCategoryInference(t *testing.T) {
	cases := []struct {
		name            string
		classifications []apiClassification
		want            model.Category
	}{
		{"genre comedy beats arts segment", classified("Arts & Theatre", "Improv Comedy"), model.CategoryComedy},
		{"genre musical is theater", classified("Arts & Theatre", "Musical"), model.CategoryTheater},
		{"genre wine is food", classified("Miscellaneous", "Wine Tasting"), model.CategoryFood},
		{"music segment", classified("Music", "Rock"), model.CategoryConcerts},
		{"sports segment", classified("Sports", ""), model.CategoryOutdoors},
		{"film segment", classified("Film", ""), model.CategoryTheater},
		{"unknown segment defaults to concerts", classified("Miscellaneous", ""), model.CategoryConcerts},
		{"no classification", nil, model.CategoryAll},
	}
	for _, tc := range cases {
		ev := apiEvent{ID: "x", Name: "x", Classifications: tc.classifications}
		if got := ev.category(); got != tc.want {
			t.Fatalf("%s: category = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	free := apiEvent{PriceRanges: []apiPriceRange{{Min: 0, Max: 20}}}
	if got := free.formatPrice(); got != "Free" {
		t.Fatalf("got %q, want Free", got)
	}
	paid := apiEvent{PriceRanges: []apiPriceRange{{Min: 42.9}}}
	if got := paid.formatPrice(); got != "$42" {
		t.Fatalf("got %q, want $42", got)
	}
	if got := (apiEvent{}).formatPrice(); got != "See tickets" {
		t.Fatalf("got %q, want See tickets", got)
	}
}

func TestFormatTime(t *testing.T) {
	cases := map[string]string{
		"19:00:00": "7:00 PM",
		"12:00:00": "12:00 PM",
		"00:30:00": "12:30 AM",
		"09:15:00": "9:15 AM",
		"garbage":  "garbage",
	}
	for in, want := range cases {
		if got := formatTime(in); got != want {
			t.Fatalf("formatTime(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBestImagePrefersWideRatioAndUsableWidth(t *testing.T) {
	e := apiEvent{Images: []apiImage{
		{URL: "a", Ratio: "4_3", Width: 300},
		{URL: "b", Ratio: "16_9", Width: 800},
		{URL: "c", Ratio: "16_9", Width: 2000},
	}}
	if got := e.bestImage(); got != "b" {
		t.Fatalf("bestImage = %q, want b", got)
	}
}

func TestBestImageTieKeepsOriginalOrder(t *testing.T) {
	e := apiEvent{Images: []apiImage{
		{URL: "first", Ratio: "16_9", Width: 800},
		{URL: "second", Ratio: "16_9", Width: 900},
	}}
	if got := e.bestImage(); got != "first" {
		t.Fatalf("bestImage = %q, want first", got)
	}
}
