package event

// NewSince returns the events in current whose identity key does not appear
// in previous. Order follows current, which Merge keeps date-sorted, so the
// result is ready for announcement without re-sorting.
func NewSince(previous, current []Event) []Event {
	seen := make(map[Key]struct{}, len(previous))
	for _, e := range previous {
		seen[e.Key()] = struct{}{}
	}

	fresh := make([]Event, 0)
	for _, e := range current {
		if _, ok := seen[e.Key()]; !ok {
			fresh = append(fresh, e)
		}
	}
	return fresh
}

// BySeries groups events by series name, preserving input order within each
// group.
func BySeries(events []Event) map[string][]Event {
	groups := make(map[string][]Event)
	for _, e := range events {
		groups[e.Series] = append(groups[e.Series], e)
	}
	return groups
}
