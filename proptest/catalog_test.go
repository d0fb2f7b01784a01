package proptest

import (
	"encoding/json"
	"folio/internal/catalog"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_List_SortedAndStable(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		doc := storedDocGen().Draw(h.T, "doc")
		if err := h.Store.Set(h.Service.Key(), doc); err != nil {
			h.T.Fatalf("store snapshot: %v", err)
		}

		var raw []map[string]any
		if err := json.Unmarshal(doc, &raw); err != nil {
			h.T.Fatalf("decode snapshot: %v", err)
		}
		position := make(map[string]int, len(raw))
		for i, m := range raw {
			position[m["id"].(string)] = i
		}

		list := h.Service.List()
		verifyStructuralInvariants(h.T, list)
		if len(list) != len(raw) {
			h.T.Fatalf("List() returned %d entries, snapshot has %d", len(list), len(raw))
		}

		for i, e := range list {
			if _, explicit := raw[position[e.ID]]["order"]; !explicit && e.Order != position[e.ID] {
				h.T.Fatalf("entry %q without order got %d, want its index %d", e.ID, e.Order, position[e.ID])
			}
			if i > 0 {
				prev := list[i-1]
				if prev.Order == e.Order && position[prev.ID] > position[e.ID] {
					h.T.Fatalf("tie on order %d not stable: %q before %q", e.Order, prev.ID, e.ID)
				}
			}
		}
	})
}

func TestProperty_List_EmptyStoreUsesSeed(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		list := h.Service.List()

		assertEntriesEqual(h.T, h.Seed, list)
		verifyContiguousOrders(h.T, list)
		if h.StoredDoc() != nil {
			h.T.Fatalf("List() wrote the seed back to storage")
		}
	})
}

func TestProperty_Create_AppendsWithNextOrder(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		before := h.Service.List()
		prior := make(map[string]bool, len(before))
		maxOrder := -1
		for _, e := range before {
			prior[e.ID] = true
			maxOrder = max(maxOrder, e.Order)
		}

		input := entryGen().Draw(h.T, "entry")
		created := h.MustCreate(input)

		if prior[created.ID] || created.ID == "" {
			h.T.Fatalf("created id %q is empty or reused", created.ID)
		}
		if created.Order != maxOrder+1 {
			h.T.Fatalf("created order = %d, want %d", created.Order, maxOrder+1)
		}

		got, ok := h.Service.Get(created.ID)
		if !ok {
			h.T.Fatalf("created entry %q not listed", created.ID)
		}
		input.ID = created.ID
		input.Order = created.Order
		assertEntriesEqual(h.T, []catalog.Entry{input}, []catalog.Entry{got})
	})
}

func TestProperty_Create_OnEmptyCollectionStartsAtZero(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		if err := h.Store.Set(h.Service.Key(), []byte("[]")); err != nil {
			h.T.Fatalf("store empty snapshot: %v", err)
		}

		created := h.MustCreate(entryGen().Draw(h.T, "entry"))

		if created.Order != 0 {
			h.T.Fatalf("first order = %d, want 0", created.Order)
		}
	})
}

func TestProperty_Delete_RemovesOnlyTarget(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		before := h.Service.List()
		target := rapid.SampledFrom(before).Draw(h.T, "target")

		if !h.Service.Delete(target.ID) {
			h.T.Fatalf("Delete(%q) reported failure", target.ID)
		}

		var want []catalog.Entry
		for _, e := range before {
			if e.ID != target.ID {
				want = append(want, e)
			}
		}
		assertEntriesEqual(h.T, want, h.Service.List())
	})
}

func TestProperty_Delete_AbsentIDIsNoopSuccess(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		before := h.Service.List()

		if !h.Service.Delete(absentIDGen.Draw(h.T, "id")) {
			h.T.Fatalf("Delete of absent id reported failure")
		}

		assertEntriesEqual(h.T, before, h.Service.List())
	})
}

func TestProperty_Reorder_BoundaryLeavesSnapshotUntouched(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		list := h.Service.List()
		docBefore := h.StoredDoc()

		if h.Service.Reorder(list[0].ID, catalog.Up) {
			h.T.Fatalf("moving the first entry up succeeded")
		}
		if h.Service.Reorder(list[len(list)-1].ID, catalog.Down) {
			h.T.Fatalf("moving the last entry down succeeded")
		}

		assertBytesEqual(h.T, "snapshot", docBefore, h.StoredDoc())
	})
}

func TestProperty_Reorder_SwapsWithNeighbour(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(1, maxEntries/2)
		before := h.Service.List()
		d := directionGen().Draw(h.T, "direction")

		i := rapid.IntRange(1, len(before)-1).Draw(h.T, "index")
		j := i - 1
		if d == catalog.Down {
			i, j = j, i
		}

		if !h.Service.Reorder(before[i].ID, d) {
			h.T.Fatalf("Reorder(%q, %s) failed", before[i].ID, d)
		}

		want := ids(before)
		want[i], want[j] = want[j], want[i]
		after := h.Service.List()
		assertSameIDs(h.T, want, ids(after))
		verifyContiguousOrders(h.T, after)
	})
}

func TestProperty_Update_PreservesIdentity(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		target := rapid.SampledFrom(h.Service.List()).Draw(h.T, "target")
		f := fieldsGen().Draw(h.T, "fields")

		if !h.Service.Update(target.ID, f) {
			h.T.Fatalf("Update(%q) failed", target.ID)
		}

		got, ok := h.Service.Get(target.ID)
		if !ok {
			h.T.Fatalf("updated entry %q disappeared", target.ID)
		}
		assertEntriesEqual(h.T, []catalog.Entry{applyFields(target, f)}, []catalog.Entry{got})
	})
}

func TestProperty_Update_AbsentIDWritesNothing(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		docBefore := h.StoredDoc()

		if h.Service.Update(absentIDGen.Draw(h.T, "id"), fieldsGen().Draw(h.T, "fields")) {
			h.T.Fatalf("Update of absent id succeeded")
		}

		assertBytesEqual(h.T, "snapshot", docBefore, h.StoredDoc())
	})
}

func TestProperty_Reset_Idempotent(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)

		if !h.Service.Reset() {
			h.T.Fatalf("first Reset failed")
		}
		once := h.Service.List()
		if !h.Service.Reset() {
			h.T.Fatalf("second Reset failed")
		}
		twice := h.Service.List()

		assertEntriesEqual(h.T, once, twice)
		assertEntriesEqual(h.T, h.Seed, twice)
	})
}

func TestProperty_StorageFailure_LeavesSnapshotUntouched(t *testing.T) {
	RunWithCatalog(t, func(h *Harness) {
		h.AddEntries(minEntries, maxEntries/2)
		list := h.Service.List()
		docBefore := h.StoredDoc()
		h.Store.FailWrites = true

		target := rapid.SampledFrom(list).Draw(h.T, "target")
		if _, ok := h.Service.Create(entryGen().Draw(h.T, "entry")); ok {
			h.T.Fatalf("Create succeeded with failing storage")
		}
		if h.Service.Update(target.ID, catalog.Fields{Title: catalog.Ptr("changed")}) {
			h.T.Fatalf("Update succeeded with failing storage")
		}
		if h.Service.Delete(target.ID) {
			h.T.Fatalf("Delete succeeded with failing storage")
		}
		if h.Service.Reset() {
			h.T.Fatalf("Reset succeeded with failing storage")
		}

		assertBytesEqual(h.T, "snapshot", docBefore, h.StoredDoc())
		assertEntriesEqual(h.T, list, h.Service.List())
	})
}
