package proptest

import (
	"errors"
	"folio/internal/catalog"
	"folio/internal/storage"
	"testing"

	"pgregory.net/rapid"
)

const (
	minEntries = 0
	maxEntries = 8
)

type Harness struct {
	T       *rapid.T
	Store   *storage.Memory
	Service *catalog.Service
	// Seed holds the drawn seed entries with their normalized orders.
	Seed []catalog.Entry
}

// StoredDoc returns the persisted snapshot, or nil when none is stored.
func (h *Harness) StoredDoc() []byte {
	doc, err := h.Store.Get(h.Service.Key())
	if errors.Is(err, storage.ErrNotExist) {
		return nil
	}
	if err != nil {
		h.T.Fatalf("reading snapshot: %v", err)
	}
	return doc
}

func (h *Harness) MustCreate(e catalog.Entry) catalog.Entry {
	created, ok := h.Service.Create(e)
	if !ok {
		h.T.Fatalf("create %q failed", e.Title)
	}
	return created
}

// AddEntries creates a drawn number of entries on top of the seed.
func (h *Harness) AddEntries(minCount, maxCount int) []catalog.Entry {
	var added []catalog.Entry
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numEntries")
	for range n {
		added = append(added, h.MustCreate(entryGen().Draw(h.T, "entry")))
	}
	return added
}

func (h *Harness) IDs() []string {
	return ids(h.Service.List())
}

func RunWithCatalog(t *testing.T, fn func(h *Harness)) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := seedGen().Draw(rt, "seed")
		for i := range seed {
			seed[i].Order = i
		}

		store := storage.NewMemory()
		svc := catalog.NewService(store, catalog.WithSeed(seedDoc(rt, seed)))

		fn(&Harness{
			T:       rt,
			Store:   store,
			Service: svc,
			Seed:    seed,
		})
	})
}

func ids(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
