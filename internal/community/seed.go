package community

import "context"

// Seed inserts sample community events into an empty collection. It is a
// no-op when the collection already has documents.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.store.Query(ctx, Collection, Filter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := s.now().In(s.loc)
	samples := []EventDocument{
		{
			Title:          "Couples Paint & Sip",
			Description:    "Paint a masterpiece together while enjoying wine and snacks. No experience needed!",
			OrganizerName:  "Art Bar Studio",
			OrganizerEmail: "info@artbarstudio.com",
			Date:           now.AddDate(0, 0, 5),
			Time:           "6:30 PM",
			LocationName:   "Art Bar Studio",
			Category:       "classes",
			IsVerified:     true,
			AttendeeCount:  24,
			Status:         StatusApproved,
			Tags:           []string{"art", "wine", "social"},
		},
		{
			Title:          "Salsa Dancing for Beginners",
			Description:    "Learn the basics of salsa dancing with your partner. Fun, energetic, and perfect for date night.",
			OrganizerName:  "Dance Central Academy",
			OrganizerEmail: "hello@dancecentral.com",
			Date:           now.AddDate(0, 0, 3),
			Time:           "7:00 PM",
			LocationName:   "Dance Central",
			Category:       "classes",
			IsVerified:     true,
			AttendeeCount:  18,
			Status:         StatusApproved,
			Tags:           []string{"dance", "active", "fun"},
			// Weekly class; consolidated into one entry with many dates.
			RRule: "FREQ=WEEKLY;COUNT=8",
		},
		{
			Title:          "Couples Cooking: Italian Night",
			Description:    "Cook a full Italian dinner together with a professional chef guiding you step by step.",
			OrganizerName:  "Chef Marco",
			OrganizerEmail: "marco@chefskitchen.com",
			Date:           now.AddDate(0, 0, 6),
			Time:           "6:00 PM",
			LocationName:   "Chef's Kitchen",
			Category:       "food",
			IsVerified:     false,
			AttendeeCount:  12,
			Status:         StatusApproved,
			Tags:           []string{"cooking", "italian", "hands-on"},
		},
		{
			Title:          "Outdoor Movie Night",
			Description:    "Bring a blanket and snuggle up for a classic movie under the stars. Popcorn provided!",
			OrganizerName:  "Parks & Rec Dept",
			OrganizerEmail: "events@parksrec.com",
			Date:           now.AddDate(0, 0, 2),
			Time:           "8:00 PM",
			LocationName:   "Riverside Park",
			Category:       "outdoors",
			IsVerified:     true,
			AttendeeCount:  56,
			Status:         StatusApproved,
			Tags:           []string{"movie", "free", "outdoor"},
		},
	}

	for _, doc := range samples {
		doc.CreatedAt = s.now()
		if _, err := s.store.Insert(ctx, Collection, doc); err != nil {
			return err
		}
	}
	return nil
}
