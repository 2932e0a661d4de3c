package model

import "strings"

// Category classifies an event for filtering.
type Category string

const (
	CategoryAll      Category = "All"
	CategoryConcerts Category = "Concerts"
	CategoryComedy   Category = "Comedy"
	CategoryOutdoors Category = "Outdoors"
	CategoryFood     Category = "Food"
	CategoryTheater  Category = "Theater"
	CategoryClasses  Category = "Classes"
)

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryConcerts,
		CategoryComedy,
		CategoryOutdoors,
		CategoryFood,
		CategoryTheater,
		CategoryClasses,
	}
}

// ParseCategory maps a case-insensitive name to a Category. The second
// return reports whether the name matched; callers choose their own
// fallback (community documents fall back to Classes, upstream payloads
// to All).
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return CategoryAll, false
}

// Source identifies the origin system of an event record.
type Source string

const (
	SourceAPI       Source = "api"
	SourceCommunity Source = "community"
	SourceCurated   Source = "curated"
)
