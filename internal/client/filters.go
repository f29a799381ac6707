package client

// listFilter pairs a query variable key with a slice filter value.
type listFilter struct {
	key    string
	values []string
}

// prepareListFilters folds slice filters into the variable values map. A
// nil slice leaves its filter unset. A non-nil empty slice can never match
// anything, reported by the false return so callers skip the round trip
// and return an empty result.
func prepareListFilters(filters map[string]any, entries ...listFilter) bool {
	for _, entry := range entries {
		if entry.values == nil {
			continue
		}

		if len(entry.values) == 0 {
			return false
		}

		filters[entry.key] = dedupe(entry.values)
	}

	return true
}

// dedupe drops repeated values, keeping first occurrences in order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}

		seen[value] = struct{}{}
		out = append(out, value)
	}

	return out
}
