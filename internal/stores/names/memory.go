package names

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ethanbaker/names/pkg/names"
)

var _ names.StoreInterface = (*InMemoryStore)(nil)

// InMemoryStore provides an in-memory implementation of StoreInterface for testing
// and for running without a database
type InMemoryStore struct {
	records []names.Name
	nextID  int64
	mutex   sync.RWMutex
}

// NewInMemoryStore creates a new in-memory names store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		records: []names.Name{},
		nextID:  1,
	}
}

// Save stores a new name and assigns the next ID
func (s *InMemoryStore) Save(ctx context.Context, value string, createdAt time.Time) (names.Name, error) {
	if err := ctx.Err(); err != nil {
		return names.Name{}, names.NewStorageError("save", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	record := names.Name{
		ID:        s.nextID,
		Value:     value,
		CreatedAt: createdAt,
	}
	s.nextID++
	s.records = append(s.records, record)

	return record, nil
}

// List returns every stored name, newest first
func (s *InMemoryStore) List(ctx context.Context) ([]names.Name, error) {
	if err := ctx.Err(); err != nil {
		return nil, names.NewStorageError("list", err)
	}

	s.mutex.RLock()
	list := make([]names.Name, len(s.records))
	copy(list, s.records)
	s.mutex.RUnlock()

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})

	return list, nil
}

// Count returns the number of stored names
func (s *InMemoryStore) Count(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return int64(len(s.records)), nil
}

// Ping always succeeds unless the context is done
func (s *InMemoryStore) Ping(ctx context.Context) error {
	return names.NewStorageError("ping", ctx.Err())
}

// TableExists is always true for the in-memory store
func (s *InMemoryStore) TableExists(ctx context.Context) bool {
	return true
}

// Close is a no-op
func (s *InMemoryStore) Close() error {
	return nil
}
