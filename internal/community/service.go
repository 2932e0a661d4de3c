package community

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	appLog "datenight/internal/log"
	"datenight/internal/model"
)

const (
	// defaultHorizonDays bounds recurrence expansion into the future.
	defaultHorizonDays = 90

	// maxOccurrencesPerEvent caps expansion of a single rule.
	maxOccurrencesPerEvent = 52
)

// Service reads and writes community events through a Store.
type Service struct {
	store       Store
	loc         *time.Location
	horizonDays int

	// now is injectable for tests.
	now func() time.Time
}

// NewService constructs a Service. loc is the calendar used for
// recurrence expansion; nil means UTC.
func NewService(store Store, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:       store,
		loc:         loc,
		horizonDays: defaultHorizonDays,
		now:         time.Now,
	}
}

// ApprovedEvents returns all approved community events, with recurring
// submissions expanded and consolidated into single records carrying
// every upcoming date.
func (s *Service) ApprovedEvents(ctx context.Context) ([]model.Event, error) {
	docs, err := s.store.Query(ctx, Collection, Filter{Status: StatusApproved})
	if err != nil {
		return nil, err
	}
	return model.Deduplicate(s.adaptAll(docs)), nil
}

// EventsByCategory returns approved community events of one category.
func (s *Service) EventsByCategory(ctx context.Context, cat model.Category) ([]model.Event, error) {
	docs, err := s.store.Query(ctx, Collection, Filter{
		Status:   StatusApproved,
		Category: strings.ToLower(string(cat)),
	})
	if err != nil {
		return nil, err
	}
	return model.Deduplicate(s.adaptAll(docs)), nil
}

// Submit stores a new community event. Submissions always start pending
// regardless of what the caller set.
func (s *Service) Submit(ctx context.Context, doc EventDocument) (string, error) {
	if strings.TrimSpace(doc.Title) == "" {
		return "", errors.New("community: submission has no title")
	}
	if doc.Date.IsZero() {
		return "", errors.New("community: submission has no date")
	}
	doc.Status = StatusPending
	doc.CreatedAt = s.now()
	return s.store.Insert(ctx, Collection, doc)
}

// adaptAll maps documents to events, expanding recurrences. Malformed
// documents are skipped so one bad submission never fails the batch.
func (s *Service) adaptAll(docs []EventDocument) []model.Event {
	events := make([]model.Event, 0, len(docs))
	for _, doc := range docs {
		if strings.TrimSpace(doc.Title) == "" || doc.Date.IsZero() {
			appLog.Debug("community document skipped", "id", doc.ID)
			continue
		}
		for _, date := range s.occurrences(doc) {
			events = append(events, doc.toEvent(date))
		}
	}
	return events
}

// occurrences returns the concrete dates a document stands for. A plain
// document yields its own date; a recurring one expands its rule from
// the document date through the horizon, capped. An unparseable rule
// degrades to the single document date.
func (s *Service) occurrences(doc EventDocument) []time.Time {
	start := doc.Date.In(s.loc)
	if doc.RRule == "" {
		return []time.Time{start}
	}

	r, err := rrule.StrToRRule(doc.RRule)
	if err != nil {
		appLog.Error("community rrule parse failed", err, "id", doc.ID, "rrule", doc.RRule)
		return []time.Time{start}
	}
	r.DTStart(start)

	horizon := s.now().In(s.loc).AddDate(0, 0, s.horizonDays)
	dates := r.Between(start, horizon, true)
	if len(dates) > maxOccurrencesPerEvent {
		dates = dates[:maxOccurrencesPerEvent]
	}
	if len(dates) == 0 {
		return []time.Time{start}
	}
	return dates
}
