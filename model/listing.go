// Package model defines the shared data types of the match engine.
package model

import "strings"

// Listing is a single candidate record supplied by a listing source:
// an identifier plus the free text that gets scored against a profile.
// A listing can be a job posting, a training course, or any other
// (id, description) record.
type Listing struct {
	ID          string            `json:"id"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Text returns the scorable text of the listing. Title and description are
// concatenated so title terms participate in scoring like any other term.
func (l Listing) Text() string {
	if l.Title == "" {
		return l.Description
	}
	if l.Description == "" {
		return l.Title
	}
	return l.Title + " " + l.Description
}

// IsEmpty reports whether the listing carries no scorable text at all.
func (l Listing) IsEmpty() bool {
	return strings.TrimSpace(l.Text()) == ""
}
