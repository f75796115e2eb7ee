// Package listing defines the boundary to external listing providers. A
// provider hands the engine a flat list of (identifier, free-text) records;
// where those records come from is not the engine's concern.
package listing

import (
	"context"

	"github.com/matchforge/go-match-engine/model"
)

// Source supplies the current set of candidate listings.
type Source interface {
	Fetch(ctx context.Context) ([]model.Listing, error)
}

// SliceSource serves a fixed in-memory set of listings. Useful for tests and
// programmatic seeding.
type SliceSource []model.Listing

// Fetch returns a copy of the underlying slice.
func (s SliceSource) Fetch(_ context.Context) ([]model.Listing, error) {
	return append([]model.Listing(nil), s...), nil
}
