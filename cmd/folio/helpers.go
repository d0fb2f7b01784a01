package main

import (
	"errors"
	"fmt"
	"folio/internal/catalog"
	"io"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.Entry
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple entries match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple entries match. Please be more specific or use the id:")
	for _, m := range e.Matches {
		fmt.Fprintf(w, "  - %s (%s)\n", m.Title, m.ID)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findEntry resolves a user-typed query to a single entry. An exact id wins
// over partial matches on title, client or technology.
func findEntry(cat catalog.Catalog, query string) (catalog.Entry, error) {
	if query == "" {
		return catalog.Entry{}, errors.New("empty query")
	}
	entries := catalog.Search(cat.List(), query)
	if len(entries) == 0 {
		return catalog.Entry{}, fmt.Errorf("no entry found matching: %s", query)
	}
	if len(entries) > 1 {
		return catalog.Entry{}, &AmbiguousMatchError{Query: query, Matches: entries}
	}
	return entries[0], nil
}
