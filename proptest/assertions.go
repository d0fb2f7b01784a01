package proptest

import (
	"folio/internal/catalog"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertEntriesEqual(t *rapid.T, expected, actual []catalog.Entry) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func assertSameIDs(t *rapid.T, expected, actual []string) {
	t.Helper()
	if !slices.Equal(expected, actual) {
		t.Fatalf("id order mismatch: expected %v, got %v", expected, actual)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Entry) {
	t.Helper()
	superIDs := make(map[string]bool, len(superset))
	for _, e := range superset {
		superIDs[e.ID] = true
	}
	for _, e := range subset {
		if !superIDs[e.ID] {
			t.Fatalf("subset contains id %s not in superset", e.ID)
		}
	}
}

func assertBytesEqual(t *rapid.T, label string, expected, actual []byte) {
	t.Helper()
	if string(expected) != string(actual) {
		t.Fatalf("%s changed:\nbefore: %s\nafter:  %s", label, expected, actual)
	}
}
