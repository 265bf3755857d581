package memory

import (
	"context"
	"sync"

	"github.com/viant/lockor/resolver"
	"github.com/viant/lockor/service/dao"
)

// Service implements an in-memory term-result storage.  All operations are
// thread-safe and return **copies** of the underlying objects to prevent
// data races when callers mutate the returned instances.
type Service struct {
	results map[int]*resolver.Result
	mux     sync.RWMutex
}

// Compile-time check that Service implements the generic DAO interface.
var _ dao.Service[int, resolver.Result] = (*Service)(nil)

// Save persists (a clone of) the supplied term result.
func (s *Service) Save(_ context.Context, r *resolver.Result) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.Term < 0 {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	s.results[r.Term] = clone(r)
	return nil
}

// Load retrieves a copy of the term result or dao.ErrNotFound.
func (s *Service) Load(_ context.Context, term int) (*resolver.Result, error) {
	if term < 0 {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	r, ok := s.results[term]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return clone(r), nil
}

// Delete removes a term result.
func (s *Service) Delete(_ context.Context, term int) error {
	if term < 0 {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.results[term]; !ok {
		return dao.ErrNotFound
	}
	delete(s.results, term)
	return nil
}

// List returns copies of all term results in ascending term order.
// Parameter filtering is not implemented for the in-memory store.
func (s *Service) List(_ context.Context, _ ...*dao.Parameter) ([]*resolver.Result, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*resolver.Result, 0, len(s.results))
	for term := 0; len(out) < len(s.results); term++ {
		if r, ok := s.results[term]; ok {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

// New constructor.
func New() *Service {
	return &Service{results: map[int]*resolver.Result{}}
}

func clone(r *resolver.Result) *resolver.Result {
	ret := &resolver.Result{Term: r.Term}
	for _, sub := range r.Applicants {
		ret.Applicants = append(ret.Applicants, sub.Clone())
	}
	for _, sub := range r.Partners {
		ret.Partners = append(ret.Partners, sub.Clone())
	}
	for _, row := range r.Allocations {
		rowCopy := *row
		ret.Allocations = append(ret.Allocations, &rowCopy)
	}
	return ret
}
