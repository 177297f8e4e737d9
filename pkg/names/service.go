package names

import (
	"context"
	"time"
)

// Service composes validation and storage into the name operations
type Service struct {
	store StoreInterface
	now   func() time.Time
}

// NewService creates a new name service on top of the given store
func NewService(store StoreInterface) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// WithClock replaces the service's time source
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Store returns the backing store
func (s *Service) Store() StoreInterface {
	return s.store
}

// CreateName validates the raw value and saves it with the current UTC time.
// The timestamp is truncated to milliseconds, the precision of the MySQL column
func (s *Service) CreateName(ctx context.Context, raw string) (Name, error) {
	if err := Validate(raw); err != nil {
		return Name{}, err
	}

	createdAt := s.now().UTC().Truncate(time.Millisecond)
	return s.store.Save(ctx, raw, createdAt)
}

// ListNames returns every stored name, newest first
func (s *Service) ListNames(ctx context.Context) ([]Name, error) {
	return s.store.List(ctx)
}
