package ticketing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"datenight/internal/model"
)

// idPrefix namespaces ticketing-sourced ids away from community ("cm_")
// and curated ("cu_") ids.
const idPrefix = "tm_"

// toEvent maps one upstream entry into the canonical event model.
// Missing optional fields degrade to display defaults: time "TBA", venue
// "TBA", price "See tickets". fallbackDate stands in when the entry
// carries no parseable start instant.
func (e apiEvent) toEvent(fallbackDate time.Time) model.Event {
	date := fallbackDate
	timeStr := "TBA"
	if e.Dates != nil && e.Dates.Start != nil {
		if e.Dates.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, e.Dates.Start.DateTime); err == nil {
				date = t
			}
		}
		if e.Dates.Start.LocalTime != "" {
			timeStr = formatTime(e.Dates.Start.LocalTime)
		}
	}

	venue := "TBA"
	if e.Embedded != nil && len(e.Embedded.Venues) > 0 && e.Embedded.Venues[0].Name != "" {
		venue = e.Embedded.Venues[0].Name
	}

	var tags []string
	if len(e.Classifications) > 0 {
		if g := e.Classifications[0].Genre; g != nil && g.Name != "" {
			tags = []string{strings.ToLower(g.Name)}
		}
	}

	return model.Event{
		ID:             idPrefix + e.ID,
		Title:          e.Name,
		Venue:          venue,
		Date:           date,
		Time:           timeStr,
		Price:          e.formatPrice(),
		ImageURL:       e.bestImage(),
		Category:       e.category(),
		Source:         model.SourceAPI,
		Tags:           tags,
		TotalShowCount: 1,
	}
}

// category infers the app category from the first classification. Genre
// substrings take precedence over the segment table because they are
// more specific ("Comedy" shows arrive under the "Arts & Theatre"
// segment).
func (e apiEvent) category() model.Category {
	if len(e.Classifications) == 0 {
		return model.CategoryAll
	}
	cls := e.Classifications[0]
	if cls.Segment == nil || cls.Segment.Name == "" {
		return model.CategoryAll
	}
	segment := strings.ToLower(cls.Segment.Name)

	if cls.Genre != nil && cls.Genre.Name != "" {
		genre := strings.ToLower(cls.Genre.Name)
		switch {
		case strings.Contains(genre, "comedy"):
			return model.CategoryComedy
		case strings.Contains(genre, "theatre"), strings.Contains(genre, "theater"),
			strings.Contains(genre, "musical"), strings.Contains(genre, "opera"):
			return model.CategoryTheater
		case strings.Contains(genre, "food"), strings.Contains(genre, "dining"),
			strings.Contains(genre, "wine"), strings.Contains(genre, "beer"):
			return model.CategoryFood
		}
	}
	return segmentToCategory(segment)
}

func segmentToCategory(segment string) model.Category {
	switch segment {
	case "music":
		return model.CategoryConcerts
	case "arts & theatre", "arts & theater":
		return model.CategoryTheater
	case "sports":
		return model.CategoryOutdoors
	case "film":
		return model.CategoryTheater
	default:
		return model.CategoryConcerts
	}
}

func (e apiEvent) formatPrice() string {
	if len(e.PriceRanges) == 0 {
		return "See tickets"
	}
	min := e.PriceRanges[0].Min
	if min == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%d", int(min))
}

// formatTime converts a 24h "19:00:00" into "7:00 PM". Unparseable
// values pass through unchanged.
func formatTime(t string) string {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return t
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return t
	}
	minute := parts[1]
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	switch {
	case hour > 12:
		displayHour = hour - 12
	case hour == 0:
		displayHour = 12
	}
	return fmt.Sprintf("%d:%s %s", displayHour, minute, period)
}

// bestImage picks the highest-scoring image: +10 for a 16:9 ratio, +5
// for a width in [500, 1200]. Ties keep the original order.
func (e apiEvent) bestImage() string {
	if len(e.Images) == 0 {
		return ""
	}
	images := make([]apiImage, len(e.Images))
	copy(images, e.Images)
	sort.SliceStable(images, func(i, j int) bool {
		return imageScore(images[i]) > imageScore(images[j])
	})
	return images[0].URL
}

func imageScore(img apiImage) int {
	score := 0
	if img.Ratio == "16_9" {
		score += 10
	}
	if img.Width >= 500 && img.Width <= 1200 {
		score += 5
	}
	return score
}
