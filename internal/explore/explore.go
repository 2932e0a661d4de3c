// Package explore is the aggregation read path: it loads the featured,
// tonight and community sections concurrently, tracks per-section state,
// and applies category and date filters when a snapshot is taken.
package explore

import (
	"context"
	"errors"
	"sync"
	"time"

	"datenight/internal/curated"
	"datenight/internal/daterange"
	"datenight/internal/location"
	appLog "datenight/internal/log"
	"datenight/internal/metrics"
	"datenight/internal/model"
	"datenight/internal/saved"
	"datenight/internal/ticketing"
)

// EventFetcher is the upstream (ticketing) surface the view-model needs.
type EventFetcher interface {
	FeaturedEvents(ctx context.Context, q ticketing.Query) ([]model.Event, error)
	TonightEvents(ctx context.Context, q ticketing.Query) ([]model.Event, error)
	SearchEvents(ctx context.Context, keyword string, q ticketing.Query) ([]model.Event, error)
	ClearCache()
}

// CommunitySource supplies approved community events.
type CommunitySource interface {
	ApprovedEvents(ctx context.Context) ([]model.Event, error)
}

// SavedStore supplies and mutates the couple's saved events.
type SavedStore interface {
	SavedEventIDs(ctx context.Context, coupleID string) (map[string]bool, error)
	Save(ctx context.Context, coupleID, userID, eventID string, source model.Source) error
	Unsave(ctx context.Context, coupleID, eventID string) error
}

// Section names one independently loaded slice of the explore screen.
type Section string

const (
	SectionFeatured  Section = "featured"
	SectionTonight   Section = "tonight"
	SectionCommunity Section = "community"
)

// Status is the per-section load state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

type sectionState struct {
	status  Status
	events  []model.Event
	message string
}

// Options configures a ViewModel.
type Options struct {
	CoupleID string
	UserID   string
	Radius   int
	// PageSize is the upstream page size for the featured query.
	PageSize int
	Location location.Source
	Calendar *time.Location

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

// ViewModel aggregates the three sections plus saved state. All
// collaborators are injected; there is no package-level instance.
type ViewModel struct {
	fetcher   EventFetcher
	community CommunitySource
	saved     SavedStore
	opts      Options

	mu       sync.Mutex
	category model.Category
	filter   daterange.Filter
	custom   *daterange.Range
	savedIDs map[string]bool
	sections map[Section]*sectionState
}

// New constructs a ViewModel with all sections idle.
func New(fetcher EventFetcher, community CommunitySource, savedStore SavedStore, opts Options) *ViewModel {
	if opts.Location == nil {
		opts.Location = location.Default
	}
	if opts.Calendar == nil {
		opts.Calendar = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	return &ViewModel{
		fetcher:   fetcher,
		community: community,
		saved:     savedStore,
		opts:      opts,
		category:  model.CategoryAll,
		filter:    daterange.FilterAnytime,
		savedIDs:  make(map[string]bool),
		sections: map[Section]*sectionState{
			SectionFeatured:  {status: StatusIdle},
			SectionTonight:   {status: StatusIdle},
			SectionCommunity: {status: StatusIdle},
		},
	}
}

// Load fetches all sections and the saved-id set concurrently and waits
// for every one to finish. One section failing never aborts the others;
// it just lands that section in the failed state.
func (vm *ViewModel) Load(ctx context.Context) {
	vm.setStatus(SectionFeatured, StatusLoading)
	vm.setStatus(SectionTonight, StatusLoading)
	vm.setStatus(SectionCommunity, StatusLoading)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); vm.loadFeatured(ctx) }()
	go func() { defer wg.Done(); vm.loadTonight(ctx) }()
	go func() { defer wg.Done(); vm.loadCommunity(ctx) }()
	go func() { defer wg.Done(); vm.loadSavedIDs(ctx) }()
	wg.Wait()
}

// Refresh drops the response cache and reloads everything.
func (vm *ViewModel) Refresh(ctx context.Context) {
	vm.fetcher.ClearCache()
	vm.Load(ctx)
}

// Retry re-runs one section's load. Used by the per-section retry
// action after a failure.
func (vm *ViewModel) Retry(ctx context.Context, section Section) {
	vm.setStatus(section, StatusLoading)
	switch section {
	case SectionFeatured:
		vm.loadFeatured(ctx)
	case SectionTonight:
		vm.loadTonight(ctx)
	case SectionCommunity:
		vm.loadCommunity(ctx)
	}
}

// SelectCategory sets the read-time category filter. An in-flight load
// keeps running; its response still lands when it completes.
func (vm *ViewModel) SelectCategory(cat model.Category) {
	vm.mu.Lock()
	vm.category = cat
	vm.mu.Unlock()
}

// SelectDateFilter sets the date filter and reloads the featured section
// with the new bounds. customRange only applies to FilterCustom.
func (vm *ViewModel) SelectDateFilter(ctx context.Context, f daterange.Filter, customRange *daterange.Range) {
	vm.mu.Lock()
	vm.filter = f
	if f == daterange.FilterCustom {
		vm.custom = customRange
	} else {
		vm.custom = nil
	}
	vm.mu.Unlock()

	vm.setStatus(SectionFeatured, StatusLoading)
	vm.loadFeatured(ctx)
}

// Filters returns the currently selected category and date filter.
func (vm *ViewModel) Filters() (model.Category, daterange.Filter) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.category, vm.filter
}

// Search passes a free-text query straight through to the upstream; the
// result is never cached and never stored on the view-model.
func (vm *ViewModel) Search(ctx context.Context, keyword string) ([]model.Event, error) {
	return vm.fetcher.SearchEvents(ctx, keyword, vm.baseQuery())
}

// IsEventSaved reports the current (possibly tentative) saved state.
func (vm *ViewModel) IsEventSaved(eventID string) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.savedIDs[eventID]
}

// ToggleSaved flips the saved state optimistically: local state changes
// immediately, the remote write runs in the background, and a failure
// rolls the local state back. The returned channel delivers exactly one
// Outcome.
func (vm *ViewModel) ToggleSaved(ctx context.Context, eventID string, source model.Source) <-chan saved.Outcome {
	vm.mu.Lock()
	wasSaved := vm.savedIDs[eventID]
	nowSaved := !wasSaved
	if nowSaved {
		vm.savedIDs[eventID] = true
	} else {
		delete(vm.savedIDs, eventID)
	}
	vm.mu.Unlock()

	out := make(chan saved.Outcome, 1)
	go func() {
		var err error
		if nowSaved {
			err = vm.saved.Save(ctx, vm.opts.CoupleID, vm.opts.UserID, eventID, source)
		} else {
			err = vm.saved.Unsave(ctx, vm.opts.CoupleID, eventID)
		}
		if err != nil {
			vm.mu.Lock()
			if wasSaved {
				vm.savedIDs[eventID] = true
			} else {
				delete(vm.savedIDs, eventID)
			}
			vm.mu.Unlock()
			appLog.Error("saved toggle rolled back", err, "event_id", eventID)
			out <- saved.Outcome{EventID: eventID, Saved: wasSaved, State: saved.StateRolledBack, Err: err}
			return
		}
		out <- saved.Outcome{EventID: eventID, Saved: nowSaved, State: saved.StateConfirmed}
	}()
	return out
}

// SavedEvents returns the loaded events the couple has saved, across all
// sections, deduplicated by id.
func (vm *ViewModel) SavedEvents() []model.Event {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	seen := make(map[string]bool)
	var out []model.Event
	for _, section := range []Section{SectionFeatured, SectionTonight, SectionCommunity} {
		for _, ev := range vm.sections[section].events {
			if vm.savedIDs[ev.ID] && !seen[ev.ID] {
				seen[ev.ID] = true
				out = append(out, ev)
			}
		}
	}
	return out
}

// section loads

func (vm *ViewModel) loadFeatured(ctx context.Context) {
	q := vm.baseQuery()
	q.Size = vm.opts.PageSize
	if r, ok := vm.currentRange(); ok {
		start, end := r.Start, r.End
		q.Start, q.End = &start, &end
	}

	events, err := vm.fetcher.FeaturedEvents(ctx, q)
	vm.finishLoad(SectionFeatured, events, err, func(now time.Time) []model.Event {
		return curated.FeaturedEvents(now)
	})
}

func (vm *ViewModel) loadTonight(ctx context.Context) {
	events, err := vm.fetcher.TonightEvents(ctx, vm.baseQuery())
	vm.finishLoad(SectionTonight, events, err, func(now time.Time) []model.Event {
		return curated.TonightEvents(now)
	})
}

func (vm *ViewModel) loadCommunity(ctx context.Context) {
	events, err := vm.community.ApprovedEvents(ctx)
	vm.finishLoad(SectionCommunity, events, err, func(now time.Time) []model.Event {
		return curated.CommunityEvents(now)
	})
}

func (vm *ViewModel) loadSavedIDs(ctx context.Context) {
	ids, err := vm.saved.SavedEventIDs(ctx, vm.opts.CoupleID)
	if err != nil {
		// Non-fatal: saved hearts simply start out empty.
		appLog.Error("saved ids load failed", err, "couple_id", vm.opts.CoupleID)
		return
	}
	vm.mu.Lock()
	vm.savedIDs = ids
	vm.mu.Unlock()
}

// finishLoad records a section load result: failures surface a
// user-facing message with a retry, empty successes fall back to the
// curated placeholder set. The most recent completion wins.
func (vm *ViewModel) finishLoad(section Section, events []model.Event, err error, fallback func(time.Time) []model.Event) {
	if err != nil {
		metrics.SectionFailure(string(section))
		appLog.Error("section load failed", err, "section", string(section))
		vm.mu.Lock()
		st := vm.sections[section]
		st.status = StatusFailed
		st.message = errorMessage(err)
		vm.mu.Unlock()
		return
	}
	if len(events) == 0 {
		events = fallback(vm.now())
	}
	vm.mu.Lock()
	st := vm.sections[section]
	st.status = StatusLoaded
	st.events = events
	st.message = ""
	vm.mu.Unlock()
}

func (vm *ViewModel) setStatus(section Section, status Status) {
	vm.mu.Lock()
	vm.sections[section].status = status
	vm.mu.Unlock()
}

func (vm *ViewModel) baseQuery() ticketing.Query {
	lat, lon := vm.opts.Location.Coordinates()
	return ticketing.Query{Latitude: lat, Longitude: lon, Radius: vm.opts.Radius, Size: 20}
}

func (vm *ViewModel) now() time.Time {
	return vm.opts.Now().In(vm.opts.Calendar)
}

// currentRange resolves the active date filter to a concrete range.
func (vm *ViewModel) currentRange() (daterange.Range, bool) {
	vm.mu.Lock()
	f, custom := vm.filter, vm.custom
	vm.mu.Unlock()

	if f == daterange.FilterCustom {
		if custom == nil {
			return daterange.Range{}, false
		}
		return *custom, true
	}
	return daterange.Resolve(f, vm.now())
}

// errorMessage maps fetch-path errors onto the user-facing section
// message.
func errorMessage(err error) string {
	var httpErr *ticketing.HTTPError
	var decodeErr *ticketing.DecodeError
	switch {
	case errors.Is(err, ticketing.ErrRateLimited):
		return "Too many requests. Please try again in a moment."
	case errors.As(err, &httpErr):
		return httpErr.Error()
	case errors.As(err, &decodeErr):
		return "Invalid server response"
	default:
		return "Couldn't load events"
	}
}
