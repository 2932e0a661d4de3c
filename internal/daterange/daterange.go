// Package daterange turns named date filters ("today", "weekend") into
// concrete half-open time intervals. All boundaries are computed against
// the location of the supplied reference time, so callers control the
// calendar that weekday and month arithmetic runs in.
package daterange

import "time"

// Filter names a date window selectable by the user.
type Filter string

const (
	FilterAnytime Filter = "anytime"
	FilterToday   Filter = "today"
	FilterWeek    Filter = "week"
	FilterWeekend Filter = "weekend"
	FilterMonth   Filter = "month"
	FilterCustom  Filter = "custom"
)

// ParseFilter maps a wire string to a Filter, defaulting to anytime.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterToday, FilterWeek, FilterWeekend, FilterMonth, FilterCustom:
		return Filter(s)
	default:
		return FilterAnytime
	}
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Resolve computes the concrete range for a filter relative to now. The
// second return is false when the filter imposes no bound (anytime) or
// needs explicit dates (custom; see ResolveCustom).
func Resolve(f Filter, now time.Time) (Range, bool) {
	day := startOfDay(now)

	switch f {
	case FilterToday:
		return Range{Start: day, End: day.AddDate(0, 0, 1)}, true

	case FilterWeek:
		// Through the end of the week, where the week ends on Sunday:
		// a Sunday now runs through the following Sunday.
		wd := int(now.Weekday()) // Sunday = 0
		end := day.AddDate(0, 0, 7-wd)
		return Range{Start: day, End: end}, true

	case FilterWeekend:
		return weekendRange(now), true

	case FilterMonth:
		firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return Range{Start: day, End: firstOfNext.AddDate(0, 0, 1)}, true

	default:
		return Range{}, false
	}
}

// ResolveCustom builds an inclusive range from two picked days:
// [startOfDay(start), startOfDay(end) + 1 day).
func ResolveCustom(start, end time.Time) Range {
	return Range{Start: startOfDay(start), End: startOfDay(end).AddDate(0, 0, 1)}
}

// weekendRange covers Saturday 00:00 through Monday 00:00 of the current
// week. Once the weekend has begun (Saturday or Sunday), the range starts
// at today instead of reaching back to Saturday.
func weekendRange(now time.Time) Range {
	day := startOfDay(now)

	var saturday time.Time
	switch now.Weekday() {
	case time.Saturday:
		saturday = day
	case time.Sunday:
		saturday = day.AddDate(0, 0, -1)
	default:
		saturday = day.AddDate(0, 0, int(time.Saturday-now.Weekday()))
	}
	monday := saturday.AddDate(0, 0, 2)

	start := saturday
	if !now.Before(saturday) {
		start = day
	}
	return Range{Start: start, End: monday}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
