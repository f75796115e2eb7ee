package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchforge/go-match-engine/model"
)

func listingFixture(id, title string) model.Listing {
	return model.Listing{ID: id, Title: title, Description: "description for " + title}
}

func TestListingStore_Upsert(t *testing.T) {
	s := NewListingStore()

	added, updated := s.Upsert([]model.Listing{
		listingFixture("a", "backend engineer"),
		listingFixture("b", "data analyst"),
	})
	assert.Equal(t, 2, added)
	assert.Equal(t, 0, updated)
	assert.Equal(t, 2, s.Len())

	added, updated = s.Upsert([]model.Listing{
		listingFixture("b", "senior data analyst"),
		listingFixture("c", "devops engineer"),
	})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 3, s.Len())

	got, ok := s.Get("b")
	require.True(t, ok)
	assert.Equal(t, "senior data analyst", got.Title)
}

func TestListingStore_InsertionOrderPreserved(t *testing.T) {
	s := NewListingStore()
	s.Upsert([]model.Listing{
		listingFixture("c", "third"),
		listingFixture("a", "first"),
		listingFixture("b", "second"),
	})

	// An upsert keeps the original position.
	s.Upsert([]model.Listing{listingFixture("a", "first, revised")})

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "b", all[2].ID)
	assert.Equal(t, "first, revised", all[1].Title)
}

func TestListingStore_GetMissing(t *testing.T) {
	s := NewListingStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}

func TestListingStore_Delete(t *testing.T) {
	s := NewListingStore()
	s.Upsert([]model.Listing{
		listingFixture("a", "one"),
		listingFixture("b", "two"),
	})

	assert.True(t, s.Delete("a"))
	assert.False(t, s.Delete("a"), "second delete of the same ID should report false")
	assert.Equal(t, 1, s.Len())

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestListingStore_DeleteAll(t *testing.T) {
	s := NewListingStore()
	s.Upsert([]model.Listing{
		listingFixture("a", "one"),
		listingFixture("b", "two"),
	})

	s.DeleteAll()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())

	// The store stays usable after a wipe.
	added, _ := s.Upsert([]model.Listing{listingFixture("c", "three")})
	assert.Equal(t, 1, added)
}

func TestListingStore_Page(t *testing.T) {
	s := NewListingStore()
	var listings []model.Listing
	for i := 1; i <= 5; i++ {
		listings = append(listings, listingFixture(fmt.Sprintf("id-%d", i), fmt.Sprintf("listing %d", i)))
	}
	s.Upsert(listings)

	page, total := s.Page(1, 2)
	assert.Equal(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "id-1", page[0].ID)
	assert.Equal(t, "id-2", page[1].ID)

	page, _ = s.Page(3, 2)
	require.Len(t, page, 1)
	assert.Equal(t, "id-5", page[0].ID)

	page, total = s.Page(4, 2)
	assert.Empty(t, page)
	assert.Equal(t, 5, total)

	page, _ = s.Page(0, 2)
	assert.Empty(t, page, "page numbers are 1-based")
}

func TestListingStore_ConcurrentAccess(t *testing.T) {
	s := NewListingStore()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.Upsert([]model.Listing{listingFixture(fmt.Sprintf("w-%d", i), "writer")})
		}
	}()
	for i := 0; i < 200; i++ {
		s.Get("w-50")
		s.Len()
		s.All()
	}
	<-done

	assert.Equal(t, 200, s.Len())
}
