// Package community maps crowd-submitted event documents into the
// canonical event model. The document store itself is an external
// collaborator; this package only defines the interface it consumes.
package community

import (
	"context"
	"time"

	"datenight/internal/model"
)

// Collection is the remote collection holding community events.
const Collection = "communityEvents"

// Document statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// EventDocument is one community submission as stored remotely. The
// fields status, date and category are the ones the store can filter on
// server-side.
type EventDocument struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	OrganizerName  string    `json:"organizerName"`
	OrganizerEmail string    `json:"organizerEmail"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	LocationName   string    `json:"locationName"`
	Category       string    `json:"category"` // lowercase category name
	IsVerified     bool      `json:"isVerified"`
	AttendeeCount  int       `json:"attendeeCount"`
	Status         string    `json:"status"`
	ImageURL       string    `json:"imageURL,omitempty"`
	Tags           []string  `json:"tags,omitempty"`

	// RRule is an optional RFC 5545 recurrence rule for repeating
	// events (weekly classes and the like).
	RRule string `json:"rrule,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Filter narrows a collection query. Zero values match everything.
type Filter struct {
	Status   string
	Category string
}

// Store is the document-store surface this package needs. Results come
// back ordered by date ascending.
type Store interface {
	Query(ctx context.Context, collection string, f Filter) ([]EventDocument, error)
	Insert(ctx context.Context, collection string, doc EventDocument) (string, error)
}

// toEvent maps a document to an event occurring on the given date. The
// id is namespaced with "cm_" so community ids never collide with
// ticketing ("tm_") or curated ("cu_") ones.
func (d EventDocument) toEvent(date time.Time) model.Event {
	cat, ok := model.ParseCategory(d.Category)
	if !ok {
		cat = model.CategoryClasses
	}
	return model.Event{
		ID:             "cm_" + d.ID,
		Title:          d.Title,
		Venue:          d.LocationName,
		Date:           date,
		Time:           d.Time,
		Price:          "Free",
		ImageURL:       d.ImageURL,
		Category:       cat,
		Source:         model.SourceCommunity,
		Tags:           d.Tags,
		Description:    d.Description,
		OrganizerName:  d.OrganizerName,
		AttendeeCount:  d.AttendeeCount,
		IsVerified:     d.IsVerified,
		TotalShowCount: 1,
	}
}
