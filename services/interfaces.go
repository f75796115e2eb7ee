package services

import (
	"github.com/matchforge/go-match-engine/model"
)

// MatchHit represents a single listing in the ranked match results, with its
// similarity score, the qualitative label derived from the score band, and
// optionally the tags extracted from the listing text.
type MatchHit struct {
	Listing model.Listing `json:"listing"`
	Score   float64       `json:"score"`
	Label   string        `json:"label"`
	Tags    []string      `json:"tags,omitempty"`
}

// MatchResult is the outcome of one match query over a source.
type MatchResult struct {
	Hits      []MatchHit `json:"hits"`
	Total     int        `json:"total"`      // hits above threshold, before the limit cut
	Scanned   int        `json:"scanned"`    // listings scored
	Threshold float64    `json:"threshold"`  // effective threshold used
	Took      int64      `json:"took"`       // milliseconds
	QueryID   string     `json:"query_id"`   // unique UUID for this match query
	Truncated bool       `json:"truncated"`  // true when Total exceeded the limit
}

// MatchQuery describes one profile-to-source match request.
type MatchQuery struct {
	ProfileText string `json:"profile_text"`

	// Threshold and Limit override the engine defaults when set.
	Threshold *float64 `json:"threshold,omitempty"`
	Limit     *int     `json:"limit,omitempty"`

	// WithTags attaches extracted keywords to every hit.
	WithTags bool `json:"with_tags,omitempty"`

	// Vocabulary selects the tag vocabulary: "skills" (default) or "topics".
	Vocabulary string `json:"vocabulary,omitempty"`
}

// SourceManager defines the management operations over named listing sources.
// It is implemented by the engine.
type SourceManager interface {
	CreateSource(name string) error
	DeleteSource(name string) error
	SourceNames() []string
	Source(name string) (SourceAccessor, error)
}

// SourceAccessor provides access to a single source: its listings and the
// match operation over them.
type SourceAccessor interface {
	Name() string

	AddListings(listings []model.Listing) error
	Listing(id string) (model.Listing, error)
	DeleteListing(id string) error
	DeleteAllListings() error
	// Listings returns one page of listings plus the total count.
	Listings(page, pageSize int) ([]model.Listing, int)
	Count() int

	Match(query MatchQuery) (MatchResult, error)
}
