package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"folio/internal/storage"
	"slices"
	"time"

	"go.uber.org/zap"
)

const DefaultKey = "portfolio_projects"

// Service keeps the catalog as a single snapshot under one storage key.
// Every mutation reads the full snapshot, transforms it in memory and
// writes it back whole. Service holds no lock: concurrent writers race and
// the last write wins.
type Service struct {
	store storage.Store
	key   string
	seed  []byte
	log   *zap.Logger
	now   func() time.Time
	newID func(time.Time) string
}

var _ Catalog = (*Service)(nil)

type Option func(*Service)

func WithKey(key string) Option {
	return func(s *Service) { s.key = key }
}

// WithSeed replaces the bundled seed with a YAML or JSON entry sequence.
func WithSeed(doc []byte) Option {
	return func(s *Service) { s.seed = slices.Clone(doc) }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDGenerator(gen func(time.Time) string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		key:   DefaultKey,
		seed:  defaultSeed,
		log:   zap.NewNop(),
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Key() string {
	return s.key
}

func (s *Service) List() []Entry {
	entries := s.load()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return entries
}

func (s *Service) load() []Entry {
	doc, err := s.store.Get(s.key)
	if errors.Is(err, storage.ErrNotExist) {
		return s.seedEntries()
	}
	if err != nil {
		s.log.Warn("reading catalog snapshot failed, using seed",
			zap.String("key", s.key),
			zap.Error(fmt.Errorf("%w: %w", ErrStorageUnavailable, err)))
		return s.seedEntries()
	}

	entries, err := decodeSnapshot(doc)
	if err != nil {
		s.log.Warn("catalog snapshot unreadable, using seed",
			zap.String("key", s.key),
			zap.Error(err))
		return s.seedEntries()
	}
	return entries
}

func (s *Service) seedEntries() []Entry {
	entries, err := decodeSeed(s.seed)
	if err != nil {
		s.log.Error("seed dataset unreadable", zap.Error(err))
		return []Entry{}
	}
	return entries
}

func (s *Service) Get(id string) (Entry, bool) {
	entries := s.List()
	i := indexOf(entries, id)
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}

func (s *Service) Create(e Entry) (Entry, bool) {
	entries := s.List()

	maxOrder := -1
	for _, existing := range entries {
		maxOrder = max(maxOrder, existing.Order)
	}

	created := e.clone()
	created.ID = s.newID(s.now())
	created.Order = maxOrder + 1

	if !s.save("create", append(entries, created)) {
		return Entry{}, false
	}
	return created, true
}

func (s *Service) Update(id string, f Fields) bool {
	entries := s.List()
	i := indexOf(entries, id)
	if i < 0 {
		s.log.Debug("update skipped", zap.String("id", id), zap.Error(ErrNotFound))
		return false
	}

	entries[i] = f.apply(entries[i])
	entries[i].ID = id
	return s.save("update", entries)
}

// Delete reports true even when id is absent; the remaining orders are
// left as they were.
func (s *Service) Delete(id string) bool {
	entries := s.List()
	remaining := slices.DeleteFunc(entries, func(e Entry) bool {
		return e.ID == id
	})
	return s.save("delete", remaining)
}

func (s *Service) Reorder(id string, d Direction) bool {
	if _, err := ParseDirection(string(d)); err != nil {
		s.log.Debug("reorder skipped", zap.String("id", id), zap.Error(err))
		return false
	}

	entries := s.List()
	i := indexOf(entries, id)
	if i < 0 {
		s.log.Debug("reorder skipped", zap.String("id", id), zap.Error(ErrNotFound))
		return false
	}
	if d == Up && i == 0 || d == Down && i == len(entries)-1 {
		return false
	}

	j := i + 1
	if d == Up {
		j = i - 1
	}
	entries[i], entries[j] = entries[j], entries[i]

	for k := range entries {
		entries[k].Order = k
	}
	return s.save("reorder", entries)
}

func (s *Service) Reset() bool {
	if err := s.store.Remove(s.key); err != nil {
		s.log.Error("reset failed",
			zap.String("key", s.key),
			zap.Error(fmt.Errorf("%w: %w", ErrStorageUnavailable, err)))
		return false
	}
	return true
}

func (s *Service) save(op string, entries []Entry) bool {
	doc, err := encodeSnapshot(entries)
	if err != nil {
		s.log.Error("encoding catalog snapshot failed", zap.String("op", op), zap.Error(err))
		return false
	}
	if err := s.store.Set(s.key, doc); err != nil {
		s.log.Error("writing catalog snapshot failed",
			zap.String("op", op),
			zap.String("key", s.key),
			zap.Error(fmt.Errorf("%w: %w", ErrStorageUnavailable, err)))
		return false
	}
	return true
}

func indexOf(entries []Entry, id string) int {
	return slices.IndexFunc(entries, func(e Entry) bool {
		return e.ID == id
	})
}
