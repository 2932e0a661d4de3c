package explore

import (
	"sort"

	"datenight/internal/curated"
	"datenight/internal/daterange"
	"datenight/internal/model"
)

// SectionView is one section with its load state and filtered events.
type SectionView struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Events  []model.Event `json:"events"`
}

// View is a consistent snapshot of the whole explore screen.
type View struct {
	Category   model.Category   `json:"category"`
	DateFilter daterange.Filter `json:"date_filter"`
	DateRange  *daterange.Range `json:"date_range,omitempty"`

	Featured SectionView `json:"featured"`
	// Tonight is nil while a date filter other than anytime/today is
	// active: the section would only repeat a subset of featured.
	Tonight   *SectionView `json:"tonight,omitempty"`
	Community SectionView  `json:"community"`

	QuickIdeas    []curated.QuickDateIdea `json:"quick_ideas"`
	SavedEventIDs []string                `json:"saved_event_ids"`
}

// Snapshot applies the category filter and then the date filter to every
// section independently and returns the result. Pure read; the stored
// section events are never mutated.
func (vm *ViewModel) Snapshot() View {
	r, haveRange := vm.currentRange()

	vm.mu.Lock()
	defer vm.mu.Unlock()

	view := View{
		Category:   vm.category,
		DateFilter: vm.filter,
		Featured:   vm.sectionView(SectionFeatured, r, haveRange),
		Community:  vm.sectionView(SectionCommunity, r, haveRange),
		QuickIdeas: curated.QuickDateIdeas(),
	}
	if haveRange {
		view.DateRange = &r
	}

	if vm.filter == daterange.FilterAnytime || vm.filter == daterange.FilterToday {
		tonight := vm.sectionView(SectionTonight, r, haveRange)
		view.Tonight = &tonight
	}

	ids := make([]string, 0, len(vm.savedIDs))
	for id := range vm.savedIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	view.SavedEventIDs = ids

	return view
}

// sectionView builds one filtered section. Caller holds vm.mu.
func (vm *ViewModel) sectionView(section Section, r daterange.Range, haveRange bool) SectionView {
	st := vm.sections[section]
	events := model.FilterByCategory(st.events, vm.category)
	if haveRange {
		events = filterByRange(events, r)
	}
	return SectionView{
		Status:  st.status,
		Message: st.message,
		Events:  events,
	}
}

// filterByRange keeps events with at least one occurrence inside the
// range, preserving order.
func filterByRange(events []model.Event, r daterange.Range) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if ev.HasDateInRange(r.Start, r.End) {
			out = append(out, ev)
		}
	}
	return out
}
