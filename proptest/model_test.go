package proptest

import (
	"cmp"
	"folio/internal/catalog"
	"slices"
)

// StateTracker is a reference model of the persisted catalog: the stored
// entry sequence, or the seed when nothing is stored.
type StateTracker struct {
	seed       []catalog.Entry
	stored     []catalog.Entry
	hasStored  bool
	failWrites bool
}

func newStateTracker(seed []catalog.Entry) *StateTracker {
	return &StateTracker{seed: cloneEntries(seed)}
}

func (s *StateTracker) List() []catalog.Entry {
	src := s.seed
	if s.hasStored {
		src = s.stored
	}
	out := cloneEntries(src)
	slices.SortStableFunc(out, func(a, b catalog.Entry) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

func (s *StateTracker) IDs() []string {
	return ids(s.List())
}

func (s *StateTracker) write(entries []catalog.Entry) bool {
	if s.failWrites {
		return false
	}
	s.stored = entries
	s.hasStored = true
	return true
}

func (s *StateTracker) Create(created catalog.Entry) bool {
	entries := s.List()
	maxOrder := -1
	for _, e := range entries {
		maxOrder = max(maxOrder, e.Order)
	}
	created.Order = maxOrder + 1
	return s.write(append(entries, created))
}

func (s *StateTracker) Update(id string, f catalog.Fields) bool {
	entries := s.List()
	i := slices.IndexFunc(entries, func(e catalog.Entry) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	entries[i] = applyFields(entries[i], f)
	return s.write(entries)
}

func (s *StateTracker) Delete(id string) bool {
	entries := slices.DeleteFunc(s.List(), func(e catalog.Entry) bool { return e.ID == id })
	return s.write(entries)
}

func (s *StateTracker) Reorder(id string, d catalog.Direction) bool {
	entries := s.List()
	i := slices.IndexFunc(entries, func(e catalog.Entry) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	j := i - 1
	if d == catalog.Down {
		j = i + 1
	}
	if j < 0 || j >= len(entries) {
		return false
	}
	entries[i], entries[j] = entries[j], entries[i]
	for k := range entries {
		entries[k].Order = k
	}
	return s.write(entries)
}

func (s *StateTracker) Reset() bool {
	if s.failWrites {
		return false
	}
	s.stored = nil
	s.hasStored = false
	return true
}

func applyFields(e catalog.Entry, f catalog.Fields) catalog.Entry {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&e.Title, f.Title)
	set(&e.Description, f.Description)
	set(&e.Client, f.Client)
	set(&e.Duration, f.Duration)
	set(&e.ImageURL, f.ImageURL)
	set(&e.ProjectURL, f.ProjectURL)
	set(&e.ImagePreviewURL, f.ImagePreviewURL)
	set(&e.DisabledMessage, f.DisabledMessage)
	if f.Technologies != nil {
		e.Technologies = slices.Clone(*f.Technologies)
	}
	if f.Category != nil {
		e.Category = *f.Category
	}
	if f.Status != nil {
		e.Status = *f.Status
	}
	if f.Order != nil {
		e.Order = *f.Order
	}
	if f.IsDisabled != nil {
		e.IsDisabled = *f.IsDisabled
	}
	return e
}

func cloneEntries(entries []catalog.Entry) []catalog.Entry {
	out := make([]catalog.Entry, len(entries))
	for i, e := range entries {
		e.Technologies = slices.Clone(e.Technologies)
		out[i] = e
	}
	return out
}

// CheckedCatalog runs every operation against both the service and the
// model and fails on the first divergence.
type CheckedCatalog struct {
	h     *Harness
	model *StateTracker
	seen  map[string]bool
}

func NewCheckedCatalog(h *Harness) *CheckedCatalog {
	seen := make(map[string]bool)
	for _, e := range h.Seed {
		seen[e.ID] = true
	}
	return &CheckedCatalog{h: h, model: newStateTracker(h.Seed), seen: seen}
}

func (c *CheckedCatalog) Model() *StateTracker {
	return c.model
}

func (c *CheckedCatalog) SetFailWrites(fail bool) {
	c.h.Store.FailWrites = fail
	c.model.failWrites = fail
}

func (c *CheckedCatalog) Create(e catalog.Entry) {
	t := c.h.T
	created, ok := c.h.Service.Create(e)
	if !ok {
		if !c.model.failWrites {
			t.Fatalf("Create failed with working storage")
		}
		c.Check()
		return
	}

	if created.ID == "" || c.seen[created.ID] {
		t.Fatalf("Create returned reused or empty id %q", created.ID)
	}
	c.seen[created.ID] = true
	e.ID = created.ID
	if !c.model.Create(e) {
		t.Fatalf("Create divergence: real succeeded, model failed")
	}
	c.Check()
}

func (c *CheckedCatalog) Update(id string, f catalog.Fields) {
	realOK := c.h.Service.Update(id, f)
	modelOK := c.model.Update(id, f)
	if realOK != modelOK {
		c.h.T.Fatalf("Update(%q) divergence: real=%v model=%v", id, realOK, modelOK)
	}
	c.Check()
}

func (c *CheckedCatalog) Delete(id string) {
	realOK := c.h.Service.Delete(id)
	modelOK := c.model.Delete(id)
	if realOK != modelOK {
		c.h.T.Fatalf("Delete(%q) divergence: real=%v model=%v", id, realOK, modelOK)
	}
	c.Check()
}

func (c *CheckedCatalog) Reorder(id string, d catalog.Direction) {
	realOK := c.h.Service.Reorder(id, d)
	modelOK := c.model.Reorder(id, d)
	if realOK != modelOK {
		c.h.T.Fatalf("Reorder(%q, %s) divergence: real=%v model=%v", id, d, realOK, modelOK)
	}
	if realOK {
		verifyContiguousOrders(c.h.T, c.h.Service.List())
	}
	c.Check()
}

func (c *CheckedCatalog) Reset() {
	realOK := c.h.Service.Reset()
	modelOK := c.model.Reset()
	if realOK != modelOK {
		c.h.T.Fatalf("Reset divergence: real=%v model=%v", realOK, modelOK)
	}
	c.Check()
}

func (c *CheckedCatalog) Get(id string) {
	realEntry, realOK := c.h.Service.Get(id)
	i := slices.IndexFunc(c.model.List(), func(e catalog.Entry) bool { return e.ID == id })
	if realOK != (i >= 0) {
		c.h.T.Fatalf("Get(%q) divergence: real=%v model=%v", id, realOK, i >= 0)
	}
	if realOK {
		assertEntriesEqual(c.h.T, c.model.List()[i:i+1], []catalog.Entry{realEntry})
	}
}

// Check compares the full listing with the model.
func (c *CheckedCatalog) Check() {
	got := c.h.Service.List()
	verifyStructuralInvariants(c.h.T, got)
	assertEntriesEqual(c.h.T, c.model.List(), got)
}
