// Package config provides configuration structures for the match engine:
// server options, scoring thresholds, ranking labels, and keyword
// vocabularies.
package config

import (
	"fmt"
	"strings"
)

// LabelBand maps a minimum score to a qualitative match label. Bands are
// evaluated in order; the first band whose Min the score reaches wins.
type LabelBand struct {
	Label string  `json:"label" mapstructure:"label"`
	Min   float64 `json:"min" mapstructure:"min"`
}

// Settings contains all runtime configuration for the match engine.
type Settings struct {
	Port string `json:"port" mapstructure:"port"` // HTTP listen port

	// ScoreThreshold is the minimum similarity score a listing must reach to
	// appear in match results. Scores below it are treated as "no match".
	ScoreThreshold float64 `json:"score_threshold" mapstructure:"score-threshold"`

	// MaxResults caps the number of hits returned per match query.
	MaxResults int `json:"max_results" mapstructure:"max-results"`

	// MatchWorkers bounds the goroutines scoring listings within one query.
	MatchWorkers int `json:"match_workers" mapstructure:"match-workers"`

	// JobWorkers bounds concurrently running background jobs.
	JobWorkers int `json:"job_workers" mapstructure:"job-workers"`

	// SkillKeywords and TopicKeywords override the built-in tag vocabularies
	// when non-empty.
	SkillKeywords []string `json:"skill_keywords,omitempty" mapstructure:"skill-keywords"`
	TopicKeywords []string `json:"topic_keywords,omitempty" mapstructure:"topic-keywords"`

	// LabelBands assigns qualitative labels to score ranges, highest first.
	LabelBands []LabelBand `json:"label_bands,omitempty" mapstructure:"label-bands"`
}

// ApplyDefaults fills zero-valued settings with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.Port == "" {
		s.Port = "8080"
	}
	if s.ScoreThreshold == 0 {
		s.ScoreThreshold = 0.3
	}
	if s.MaxResults == 0 {
		s.MaxResults = 20
	}
	if s.MatchWorkers == 0 {
		s.MatchWorkers = 4
	}
	if s.JobWorkers == 0 {
		s.JobWorkers = 5
	}
	if len(s.LabelBands) == 0 {
		s.LabelBands = []LabelBand{
			{Label: "strong match", Min: 0.7},
			{Label: "good match", Min: 0.45},
			{Label: "partial match", Min: 0},
		}
	}
}

// Validate checks the settings for inconsistencies and returns a list of
// human-readable problems. An empty list means the settings are usable.
func (s *Settings) Validate() []string {
	var problems []string

	if s.ScoreThreshold < 0 || s.ScoreThreshold > 1 {
		problems = append(problems, fmt.Sprintf("score-threshold must be within [0, 1], got %v", s.ScoreThreshold))
	}
	if s.MaxResults < 0 {
		problems = append(problems, fmt.Sprintf("max-results cannot be negative, got %d", s.MaxResults))
	}
	if s.MatchWorkers < 1 {
		problems = append(problems, fmt.Sprintf("match-workers must be at least 1, got %d", s.MatchWorkers))
	}
	if s.JobWorkers < 1 {
		problems = append(problems, fmt.Sprintf("job-workers must be at least 1, got %d", s.JobWorkers))
	}

	for i, band := range s.LabelBands {
		if strings.TrimSpace(band.Label) == "" {
			problems = append(problems, fmt.Sprintf("label-bands[%d] has an empty label", i))
		}
		if band.Min < 0 || band.Min > 1 {
			problems = append(problems, fmt.Sprintf("label-bands[%d] min must be within [0, 1], got %v", i, band.Min))
		}
		if i > 0 && band.Min >= s.LabelBands[i-1].Min {
			problems = append(problems, fmt.Sprintf("label-bands must be ordered by descending min, band %d (%v) is not below band %d (%v)",
				i, band.Min, i-1, s.LabelBands[i-1].Min))
		}
	}

	return problems
}

// LabelFor returns the label of the first band the score reaches, or the
// empty string when no band matches.
func (s *Settings) LabelFor(score float64) string {
	for _, band := range s.LabelBands {
		if score >= band.Min {
			return band.Label
		}
	}
	return ""
}
