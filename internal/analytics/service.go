// Package analytics aggregates statistics across match queries.
package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/matchforge/go-match-engine/services"
)

const popularTagLimit = 10

// TagCount is one entry of the popular-tag ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// Stats is a copyable snapshot of the collected match statistics.
type Stats struct {
	TotalQueries    int64      `json:"total_queries"`
	TotalHits       int64      `json:"total_hits"`
	AverageTopScore float64    `json:"average_top_score"`
	AverageTookMs   float64    `json:"average_took_ms"`
	PopularTags     []TagCount `json:"popular_tags,omitempty"`
	LastQueryAt     *time.Time `json:"last_query_at,omitempty"`
}

// Service collects match statistics. Safe for concurrent use.
type Service struct {
	mu           sync.RWMutex
	totalQueries int64
	totalHits    int64
	topScoreSum  float64
	tookSumMs    int64
	tagCounts    map[string]int64
	lastQueryAt  time.Time
}

// NewService creates an empty analytics collector.
func NewService() *Service {
	return &Service{
		tagCounts: make(map[string]int64),
	}
}

// RecordMatch folds one match result into the running statistics.
func (s *Service) RecordMatch(result services.MatchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalQueries++
	s.totalHits += int64(result.Total)
	s.tookSumMs += result.Took
	s.lastQueryAt = time.Now()

	if len(result.Hits) > 0 {
		s.topScoreSum += result.Hits[0].Score
		for _, hit := range result.Hits {
			for _, tag := range hit.Tags {
				s.tagCounts[tag]++
			}
		}
	}
}

// Stats returns a snapshot of the collected statistics.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalQueries: s.totalQueries,
		TotalHits:    s.totalHits,
	}
	if s.totalQueries > 0 {
		stats.AverageTopScore = s.topScoreSum / float64(s.totalQueries)
		stats.AverageTookMs = float64(s.tookSumMs) / float64(s.totalQueries)
		lastQueryAt := s.lastQueryAt
		stats.LastQueryAt = &lastQueryAt
	}

	stats.PopularTags = make([]TagCount, 0, len(s.tagCounts))
	for tag, count := range s.tagCounts {
		stats.PopularTags = append(stats.PopularTags, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(stats.PopularTags, func(a, b int) bool {
		if stats.PopularTags[a].Count != stats.PopularTags[b].Count {
			return stats.PopularTags[a].Count > stats.PopularTags[b].Count
		}
		return stats.PopularTags[a].Tag < stats.PopularTags[b].Tag
	})
	if len(stats.PopularTags) > popularTagLimit {
		stats.PopularTags = stats.PopularTags[:popularTagLimit]
	}

	return stats
}
