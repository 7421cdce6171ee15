// Package catalog loads the static movie dataset the recommendation
// engine ranks over. The catalog is loaded once, lazily, and shared
// read-only by every request for the process lifetime.
package catalog

import (
	"context"
	"sync"

	"github.com/moodflix/moodflix/internal/domain"
)

// Catalog is the loaded dataset plus which ranking columns it carries.
type Catalog struct {
	Movies         []domain.Movie
	HasPopularity  bool
	HasVoteAverage bool
}

// Source loads the catalog from its backing store.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// Service guards the lazy load. Concurrent first requests share a single
// load; a failed load is reported to its caller and re-attempted on the
// next request, so a briefly-unavailable backing store heals without a
// restart.
type Service struct {
	source Source

	mu      sync.Mutex
	catalog *Catalog
}

// NewService creates a lazily-loading catalog service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Get returns the catalog, loading it on first use.
func (s *Service) Get(ctx context.Context) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	// The catalog is shared process state, so the load must not be
	// aborted by one caller disconnecting mid-request.
	catalog, err := s.source.Load(context.WithoutCancel(ctx))
	if err != nil {
		return nil, domain.ErrCatalogUnavailable.WithError(err)
	}

	s.catalog = catalog
	return s.catalog, nil
}

// Ready triggers the load if needed and reports whether it succeeded.
func (s *Service) Ready(ctx context.Context) error {
	_, err := s.Get(ctx)
	return err
}

// Loaded reports whether the catalog has been loaded successfully.
func (s *Service) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog != nil
}
