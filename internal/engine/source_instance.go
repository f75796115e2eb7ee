package engine

import (
	"context"
	"fmt"

	"github.com/matchforge/go-match-engine/internal/errors"
	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
	"github.com/matchforge/go-match-engine/store"
)

// SourceInstance holds the listings of a single source.
// It implements the services.SourceAccessor interface.
type SourceInstance struct {
	name   string
	store  *store.ListingStore
	engine *Engine
}

func newSourceInstance(name string, eng *Engine) *SourceInstance {
	return &SourceInstance{
		name:   name,
		store:  store.NewListingStore(),
		engine: eng,
	}
}

// Name returns the source name.
func (si *SourceInstance) Name() string { return si.name }

// AddListings adds or replaces listings in the source. Every listing must
// carry a non-empty ID.
func (si *SourceInstance) AddListings(listings []model.Listing) error {
	for i, listing := range listings {
		if listing.ID == "" {
			return errors.NewValidationError("id", fmt.Sprintf("listing at position %d has no id", i))
		}
	}
	si.store.Upsert(listings)
	return nil
}

// Listing returns a single listing by ID.
func (si *SourceInstance) Listing(id string) (model.Listing, error) {
	listing, ok := si.store.Get(id)
	if !ok {
		return model.Listing{}, errors.NewListingNotFoundError(id, si.name)
	}
	return listing, nil
}

// DeleteListing removes a single listing by ID.
func (si *SourceInstance) DeleteListing(id string) error {
	if !si.store.Delete(id) {
		return errors.NewListingNotFoundError(id, si.name)
	}
	return nil
}

// DeleteAllListings removes every listing from the source.
func (si *SourceInstance) DeleteAllListings() error {
	si.store.DeleteAll()
	return nil
}

// Listings returns one page of listings plus the total count.
func (si *SourceInstance) Listings(page, pageSize int) ([]model.Listing, int) {
	return si.store.Page(page, pageSize)
}

// Count returns the number of listings in the source.
func (si *SourceInstance) Count() int {
	return si.store.Len()
}

// Match runs a synchronous match query over this source.
func (si *SourceInstance) Match(query services.MatchQuery) (services.MatchResult, error) {
	return si.engine.match(context.Background(), si, query), nil
}
