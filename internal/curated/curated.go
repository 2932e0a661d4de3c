// Package curated holds the static seed events shown when a live source
// returns nothing.
package curated

import (
	"time"

	"datenight/internal/model"
)

// FeaturedEvents returns the curated featured fallback set, dated
// relative to now.
func FeaturedEvents(now time.Time) []model.Event {
	return []model.Event{
		{
			ID:             "cu_featured_jazz",
			Title:          "Jazz & Wine Evening",
			Venue:          "The Velvet Room",
			Date:           eveningOn(now.AddDate(0, 0, 2), 19),
			Time:           "7:00 PM",
			Price:          "$35",
			Category:       model.CategoryConcerts,
			Source:         model.SourceCurated,
			Tags:           []string{"jazz", "wine", "intimate"},
			Description:    "Live jazz trio with a curated wine flight for two.",
			IsVerified:     true,
			TotalShowCount: 1,
		},
		{
			ID:             "cu_featured_rooftop",
			Title:          "Rooftop Cinema Classics",
			Venue:          "Skyline Terrace",
			Date:           eveningOn(now.AddDate(0, 0, 4), 20),
			Time:           "8:00 PM",
			Price:          "$20",
			Category:       model.CategoryOutdoors,
			Source:         model.SourceCurated,
			Tags:           []string{"movie", "rooftop", "view"},
			Description:    "A classic film under the open sky, blankets included.",
			IsVerified:     true,
			TotalShowCount: 1,
		},
		{
			ID:             "cu_featured_improv",
			Title:          "Improv Night: Date Edition",
			Venue:          "The Laugh Track",
			Date:           eveningOn(now.AddDate(0, 0, 3), 20),
			Time:           "8:00 PM",
			Price:          "$15",
			Category:       model.CategoryComedy,
			Source:         model.SourceCurated,
			Tags:           []string{"comedy", "improv"},
			Description:    "Couples-themed improv where the audience writes the prompts.",
			IsVerified:     true,
			TotalShowCount: 1,
		},
	}
}

// TonightEvents returns the curated tonight fallback set.
func TonightEvents(now time.Time) []model.Event {
	return []model.Event{
		{
			ID:             "cu_tonight_trivia",
			Title:          "Two-Player Trivia Night",
			Venue:          "Corner Tap House",
			Date:           eveningOn(now, 19),
			Time:           "7:00 PM",
			Price:          "Free",
			Category:       model.CategoryFood,
			Source:         model.SourceCurated,
			Tags:           []string{"trivia", "casual"},
			Description:    "Weekly pub trivia with a pairs-only bracket.",
			TotalShowCount: 1,
		},
		{
			ID:             "cu_tonight_gallery",
			Title:          "Late Night at the Gallery",
			Venue:          "Modern Art Annex",
			Date:           eveningOn(now, 18),
			Time:           "6:00 PM",
			Price:          "Free",
			Category:       model.CategoryClasses,
			Source:         model.SourceCurated,
			Tags:           []string{"art", "free"},
			Description:    "After-hours gallery access with a guided sketch walk.",
			TotalShowCount: 1,
		},
	}
}

// CommunityEvents returns the curated community fallback set.
func CommunityEvents(now time.Time) []model.Event {
	return []model.Event{
		{
			ID:             "cu_community_pottery",
			Title:          "Pottery for Two",
			Venue:          "Clay & Co.",
			Date:           eveningOn(now.AddDate(0, 0, 5), 18),
			Time:           "6:00 PM",
			Price:          "Free",
			Category:       model.CategoryClasses,
			Source:         model.SourceCurated,
			Tags:           []string{"pottery", "hands-on"},
			Description:    "Throw your first bowls together; pieces fired and ready in a week.",
			OrganizerName:  "Clay & Co.",
			AttendeeCount:  16,
			IsVerified:     true,
			TotalShowCount: 1,
		},
		{
			ID:             "cu_community_hike",
			Title:          "Golden Hour Hike",
			Venue:          "Ridge Trailhead",
			Date:           eveningOn(now.AddDate(0, 0, 1), 17),
			Time:           "5:00 PM",
			Price:          "Free",
			Category:       model.CategoryOutdoors,
			Source:         model.SourceCurated,
			Tags:           []string{"hike", "sunset", "free"},
			Description:    "Easy guided hike timed to catch the sunset from the ridge.",
			OrganizerName:  "Trail Friends",
			AttendeeCount:  30,
			IsVerified:     false,
			TotalShowCount: 1,
		},
	}
}

// QuickDateIdea is a lightweight suggestion without a concrete event.
type QuickDateIdea struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// QuickDateIdeas returns the quick-idea tag cloud.
func QuickDateIdeas() []QuickDateIdea {
	return []QuickDateIdea{
		{ID: "idea_picnic", Label: "Sunset picnic", Emoji: "🧺"},
		{ID: "idea_bookstore", Label: "Bookstore crawl", Emoji: "📚"},
		{ID: "idea_cook", Label: "Cook-off at home", Emoji: "🍳"},
		{ID: "idea_stargaze", Label: "Stargazing drive", Emoji: "🌌"},
		{ID: "idea_arcade", Label: "Retro arcade", Emoji: "🕹️"},
		{ID: "idea_market", Label: "Farmers market", Emoji: "🍓"},
	}
}

func eveningOn(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
