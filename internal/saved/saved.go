// Package saved tracks which events a couple has saved. Writes go to a
// remote per-couple collection; toggling is optimistic with an explicit
// Tentative → Confirmed | RolledBack outcome.
package saved

import (
	"context"
	"time"

	"datenight/internal/model"
)

// Record is one saved event for a couple.
type Record struct {
	ID      string       `json:"id"`
	EventID string       `json:"eventId"`
	Source  model.Source `json:"source"`
	SavedAt time.Time    `json:"savedAt"`
	SavedBy string       `json:"savedBy"` // user id, opaque
}

// Store is the remote surface for saved-event records, keyed by couple.
type Store interface {
	List(ctx context.Context, coupleID string) ([]Record, error)
	Save(ctx context.Context, coupleID string, rec Record) (string, error)
	Delete(ctx context.Context, coupleID, eventID string) error
}

// State of an optimistic toggle.
type State string

const (
	// StateTentative: local state flipped, remote write in flight.
	StateTentative State = "tentative"
	// StateConfirmed: remote write succeeded.
	StateConfirmed State = "confirmed"
	// StateRolledBack: remote write failed, local state restored.
	StateRolledBack State = "rolled_back"
)

// Outcome reports how an optimistic toggle ended. Saved is the local
// state after reconciliation.
type Outcome struct {
	EventID string
	Saved   bool
	State   State
	Err     error
}

// Service wraps a Store with the operations the aggregation layer needs.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SavedEventIDs returns the set of saved event ids for a couple.
func (s *Service) SavedEventIDs(ctx context.Context, coupleID string) (map[string]bool, error) {
	recs, err := s.store.List(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(recs))
	for _, r := range recs {
		ids[r.EventID] = true
	}
	return ids, nil
}

// Save records an event as saved by a user of the couple.
func (s *Service) Save(ctx context.Context, coupleID, userID, eventID string, source model.Source) error {
	_, err := s.store.Save(ctx, coupleID, Record{
		EventID: eventID,
		Source:  source,
		SavedAt: s.now(),
		SavedBy: userID,
	})
	return err
}

// Unsave removes a saved event.
func (s *Service) Unsave(ctx context.Context, coupleID, eventID string) error {
	return s.store.Delete(ctx, coupleID, eventID)
}
