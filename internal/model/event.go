package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Event is the canonical in-memory representation of one show. A
// consolidated event carries every known occurrence: Date is the earliest
// one and AdditionalDates holds the rest. Events are value objects;
// merging produces a new Event, never an in-place edit.
type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Venue    string    `json:"venue"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Price    string    `json:"price"`
	ImageURL string    `json:"image_url,omitempty"`
	Category Category  `json:"category"`
	Source   Source    `json:"source"`
	Tags     []string  `json:"tags,omitempty"`

	Description   string `json:"description,omitempty"`
	OrganizerName string `json:"organizer_name,omitempty"`
	AttendeeCount int    `json:"attendee_count,omitempty"`
	IsVerified    bool   `json:"is_verified"`

	// AdditionalDates are further occurrences of the same show, sorted
	// ascending and disjoint from Date.
	AdditionalDates []time.Time `json:"additional_dates,omitempty"`

	// TotalShowCount is a display counter of occurrences merged into
	// this record. The authoritative occurrence list is AllDates.
	TotalShowCount int `json:"total_show_count"`
}

// DeduplicationKey identifies the show: records with equal keys are the
// same show and get consolidated.
func (e Event) DeduplicationKey() string {
	title := strings.ToLower(strings.TrimSpace(e.Title))
	venue := strings.ToLower(strings.TrimSpace(e.Venue))
	return title + "|" + venue
}

// AllDates returns every occurrence (primary + additional), sorted
// ascending with no duplicates.
func (e Event) AllDates() []time.Time {
	out := make([]time.Time, 0, 1+len(e.AdditionalDates))
	out = append(out, e.Date)
	out = append(out, e.AdditionalDates...)
	return sortedUniqueDates(out)
}

// HasDateInRange reports whether any occurrence falls in [start, end).
func (e Event) HasDateInRange(start, end time.Time) bool {
	for _, d := range e.AllDates() {
		if !d.Before(start) && d.Before(end) {
			return true
		}
	}
	return false
}

// IsTonight reports whether any occurrence falls on the calendar day of
// now, in now's location.
func (e Event) IsTonight(now time.Time) bool {
	day := startOfDay(now)
	return e.HasDateInRange(day, day.AddDate(0, 0, 1))
}

// Merge consolidates another record of the same show into this one. The
// receiver is the earlier-seen record and stays authoritative for
// identity, title, venue, category, price, tags and organizer info;
// ImageURL and Description fall back to the other side only when empty
// here. Defined for records with equal DeduplicationKey.
func (e Event) Merge(other Event) Event {
	dates := make([]time.Time, 0, 2+len(e.AdditionalDates)+len(other.AdditionalDates))
	dates = append(dates, e.Date, other.Date)
	dates = append(dates, e.AdditionalDates...)
	dates = append(dates, other.AdditionalDates...)
	dates = sortedUniqueDates(dates)

	// Earliest occurrence becomes the primary date; the rest are
	// additional.
	merged := e
	merged.Date = dates[0]
	merged.AdditionalDates = dates[1:]
	merged.TotalShowCount = e.TotalShowCount + other.TotalShowCount

	if merged.ImageURL == "" {
		merged.ImageURL = other.ImageURL
	}
	if merged.Description == "" {
		merged.Description = other.Description
	}
	return merged
}

// FormattedDate renders the occurrence span for display, e.g. "Jun 10"
// or "Jun 10 – Jun 14" for a consolidated record.
func (e Event) FormattedDate() string {
	const layout = "Jan 2"
	if e.TotalShowCount > 1 {
		all := e.AllDates()
		startStr := all[0].Format(layout)
		endStr := all[len(all)-1].Format(layout)
		if startStr == endStr {
			return startStr
		}
		return startStr + " – " + endStr
	}
	return e.Date.Format(layout)
}

// ShowCountLabel returns "N shows" for consolidated records, "" otherwise.
func (e Event) ShowCountLabel() string {
	if e.TotalShowCount > 1 {
		return fmt.Sprintf("%d shows", e.TotalShowCount)
	}
	return ""
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sortedUniqueDates(dates []time.Time) []time.Time {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	out := dates[:0]
	for _, d := range dates {
		if len(out) > 0 && out[len(out)-1].Equal(d) {
			continue
		}
		out = append(out, d)
	}
	return out
}
