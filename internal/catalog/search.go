package catalog

import "strings"

// Search returns the entry with exactly matching id if there is one,
// otherwise every entry whose title, client or technologies contain query
// (case-insensitive). An empty query matches everything.
func Search(entries []Entry, query string) []Entry {
	if query == "" {
		return entries
	}

	for _, e := range entries {
		if e.ID == query {
			return []Entry{e}
		}
	}

	query = strings.ToLower(query)
	var results []Entry
	for _, e := range entries {
		if matchesQuery(e, query) {
			results = append(results, e)
		}
	}
	return results
}

func matchesQuery(e Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Client), query) {
		return true
	}
	for _, tech := range e.Technologies {
		if strings.Contains(strings.ToLower(tech), query) {
			return true
		}
	}
	return false
}

func FilterByCategory(entries []Entry, c Category) []Entry {
	if c == "" {
		return entries
	}
	var results []Entry
	for _, e := range entries {
		if e.Category == c {
			results = append(results, e)
		}
	}
	return results
}

// Window returns up to size entries starting at start, wrapping past the
// end the way the portfolio carousel pages through projects.
func Window(entries []Entry, start, size int) []Entry {
	n := len(entries)
	if n == 0 || size <= 0 {
		return nil
	}
	size = min(size, n)
	start = ((start % n) + n) % n

	window := make([]Entry, 0, size)
	for i := range size {
		window = append(window, entries[(start+i)%n])
	}
	return window
}
