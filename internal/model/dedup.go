package model

// Deduplicate consolidates records that represent the same show (equal
// DeduplicationKey) into single entries with multiple dates. Output order
// is the first-seen order of keys, each key emitted exactly once. Pure:
// the input slice is not modified.
func Deduplicate(events []Event) []Event {
	seen := make(map[string]Event, len(events))
	order := make([]string, 0, len(events))

	for _, ev := range events {
		key := ev.DeduplicationKey()
		if existing, ok := seen[key]; ok {
			seen[key] = existing.Merge(ev)
		} else {
			seen[key] = ev
			order = append(order, key)
		}
	}

	out := make([]Event, 0, len(order))
	for _, key := range order {
		out = append(out, seen[key])
	}
	return out
}

// FilterByCategory keeps events matching the category, preserving order.
// CategoryAll passes everything through.
func FilterByCategory(events []Event, cat Category) []Event {
	if cat == CategoryAll {
		return events
	}
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Category == cat {
			out = append(out, ev)
		}
	}
	return out
}
