package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matchforge/go-match-engine/model"
)

// FileSource loads listings from a JSON file. The file may contain either a
// bare array of listings or an object with a "listings" key.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

type listingsDocument struct {
	Listings []model.Listing `json:"listings"`
}

// Fetch reads and parses the file. Records without an ID are rejected, since
// downstream results are keyed by listing ID.
func (f FileSource) Fetch(_ context.Context) ([]model.Listing, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file %s: %w", f.Path, err)
	}

	listings, err := parseListings(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listings file %s: %w", f.Path, err)
	}

	for i, listing := range listings {
		if strings.TrimSpace(listing.ID) == "" {
			return nil, fmt.Errorf("listing at position %d in %s has no id", i, f.Path)
		}
	}
	return listings, nil
}

func parseListings(data []byte) ([]model.Listing, error) {
	var direct []model.Listing
	if err := json.Unmarshal(data, &direct); err == nil {
		return direct, nil
	}

	var wrapped listingsDocument
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Listings == nil {
		return nil, fmt.Errorf("expected a JSON array of listings or an object with a 'listings' key")
	}
	return wrapped.Listings, nil
}
