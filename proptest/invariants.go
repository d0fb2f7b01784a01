package proptest

import (
	"folio/internal/catalog"

	"pgregory.net/rapid"
)

// verifyStructuralInvariants checks what must hold for every List result:
// ascending order and unique, non-empty ids.
func verifyStructuralInvariants(t *rapid.T, entries []catalog.Entry) {
	t.Helper()
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			t.Fatalf("entry at %d has empty id", i)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate id %q in List()", e.ID)
		}
		seen[e.ID] = true

		if i > 0 && entries[i-1].Order > e.Order {
			t.Fatalf("List() not sorted: order %d at %d before %d", entries[i-1].Order, i-1, e.Order)
		}
	}
}

func verifyContiguousOrders(t *rapid.T, entries []catalog.Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Order != i {
			t.Fatalf("order not renormalized: entry %q at %d has order %d", e.ID, i, e.Order)
		}
	}
}
