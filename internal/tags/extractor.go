// Package tags extracts domain keywords from free text by presence lookup
// against a fixed vocabulary.
package tags

import "strings"

// DefaultSkills is the built-in skill vocabulary used when no custom list is
// configured. Order is preserved in extraction results.
var DefaultSkills = []string{
	"python", "java", "javascript", "typescript", "golang",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"sql", "nosql", "react", "node", "linux", "git",
	"machine learning", "data analysis", "data engineering",
	"devops", "security", "networking", "testing",
	"communication", "leadership", "project management", "agile",
}

// DefaultTopics is the built-in topic vocabulary for training listings.
var DefaultTopics = []string{
	"cloud computing", "web development", "data science",
	"machine learning", "cybersecurity", "devops",
	"database administration", "mobile development",
	"project management", "networking", "leadership", "agile",
}

// Extractor returns the subset of a fixed keyword vocabulary present in a
// text. It is pure and stateless; results preserve vocabulary order.
type Extractor struct {
	vocabulary []string
}

// NewExtractor creates an Extractor over the given vocabulary. Keywords are
// matched case-insensitively as substrings, so multi-word keywords like
// "machine learning" work without tokenization.
func NewExtractor(vocabulary []string) *Extractor {
	lowered := make([]string, 0, len(vocabulary))
	for _, keyword := range vocabulary {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			lowered = append(lowered, keyword)
		}
	}
	return &Extractor{vocabulary: lowered}
}

// Extract returns the vocabulary keywords present in text, in vocabulary
// order. An empty text yields an empty (non-nil) slice.
func (e *Extractor) Extract(text string) []string {
	lowered := strings.ToLower(text)

	found := make([]string, 0)
	for _, keyword := range e.vocabulary {
		if strings.Contains(lowered, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}
