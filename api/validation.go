package api

import (
	"strconv"
	"strings"

	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

// ValidationIssue describes one problem found in a request.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ValidationResult aggregates the issues of one request.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

func (r *ValidationResult) add(field, message, code string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Message: message, Code: code})
}

// validateMatchQuery checks the user-controlled parts of a match query.
// An empty profile text is allowed: it scores 0.0 against everything and
// yields no hits, which is the documented "no match" behavior.
func validateMatchQuery(query services.MatchQuery) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if query.Threshold != nil && (*query.Threshold < 0 || *query.Threshold > 1) {
		result.add("threshold", "threshold must be within [0, 1]", "OUT_OF_RANGE")
	}
	if query.Limit != nil && *query.Limit < 0 {
		result.add("limit", "limit cannot be negative", "OUT_OF_RANGE")
	}
	switch strings.ToLower(query.Vocabulary) {
	case "", "skills", "topics":
	default:
		result.add("vocabulary", "vocabulary must be 'skills' or 'topics'", "INVALID_VALUE")
	}

	return result
}

// validateListings checks a bulk listing payload.
func validateListings(listings []model.Listing) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(listings) == 0 {
		result.add("listings", "at least one listing is required", "EMPTY")
		return result
	}

	seen := make(map[string]bool, len(listings))
	for i, listing := range listings {
		if strings.TrimSpace(listing.ID) == "" {
			result.add("listings", "listing at position "+strconv.Itoa(i)+" has no id", "MISSING_ID")
			continue
		}
		if seen[listing.ID] {
			result.add("listings", "duplicate listing id '"+listing.ID+"'", "DUPLICATE_ID")
		}
		seen[listing.ID] = true
	}

	return result
}
