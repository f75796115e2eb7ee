// Package store provides the in-memory listing registry backing a source.
package store

import (
	"sync"

	"github.com/matchforge/go-match-engine/model"
)

// ListingStore holds the listings of one source, keyed by listing ID.
// It is safe for concurrent use. Insertion order is preserved so listing
// pages are stable across calls; an upsert keeps the original position.
type ListingStore struct {
	mu       sync.RWMutex
	listings map[string]model.Listing
	order    []string
}

// NewListingStore creates an empty listing store.
func NewListingStore() *ListingStore {
	return &ListingStore{
		listings: make(map[string]model.Listing),
	}
}

// Upsert adds or replaces the given listings and reports how many were newly
// added vs. updated in place.
func (s *ListingStore) Upsert(listings []model.Listing) (added, updated int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, listing := range listings {
		if _, exists := s.listings[listing.ID]; exists {
			updated++
		} else {
			s.order = append(s.order, listing.ID)
			added++
		}
		s.listings[listing.ID] = listing
	}
	return added, updated
}

// Get returns the listing with the given ID.
func (s *ListingStore) Get(id string) (model.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.listings[id]
	return listing, ok
}

// Delete removes the listing with the given ID and reports whether it existed.
func (s *ListingStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[id]; !ok {
		return false
	}
	delete(s.listings, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// DeleteAll removes every listing.
func (s *ListingStore) DeleteAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listings = make(map[string]model.Listing)
	s.order = nil
}

// Len returns the number of stored listings.
func (s *ListingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.listings)
}

// All returns a snapshot of every listing in insertion order.
func (s *ListingStore) All() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]model.Listing, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.listings[id])
	}
	return all
}

// Page returns one page of listings (1-based page number) plus the total
// count. An out-of-range page yields an empty slice.
func (s *ListingStore) Page(page, pageSize int) ([]model.Listing, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.order)
	if page < 1 || pageSize < 1 {
		return []model.Listing{}, total
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []model.Listing{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	result := make([]model.Listing, 0, end-start)
	for _, id := range s.order[start:end] {
		result = append(result, s.listings[id])
	}
	return result, total
}
