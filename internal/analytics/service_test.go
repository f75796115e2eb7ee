package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

func matchResultFixture(topScore float64, took int64, tags ...string) services.MatchResult {
	return services.MatchResult{
		Hits: []services.MatchHit{
			{Listing: model.Listing{ID: "1"}, Score: topScore, Tags: tags},
		},
		Total: 1,
		Took:  took,
	}
}

func TestStats_Empty(t *testing.T) {
	s := NewService()

	stats := s.Stats()
	assert.Equal(t, int64(0), stats.TotalQueries)
	assert.Equal(t, int64(0), stats.TotalHits)
	assert.Equal(t, 0.0, stats.AverageTopScore)
	assert.Nil(t, stats.LastQueryAt)
	assert.Empty(t, stats.PopularTags)
}

func TestRecordMatch_Aggregates(t *testing.T) {
	s := NewService()
	s.RecordMatch(matchResultFixture(0.8, 10))
	s.RecordMatch(matchResultFixture(0.4, 30))

	stats := s.Stats()
	assert.Equal(t, int64(2), stats.TotalQueries)
	assert.Equal(t, int64(2), stats.TotalHits)
	assert.InDelta(t, 0.6, stats.AverageTopScore, 1e-12)
	assert.InDelta(t, 20, stats.AverageTookMs, 1e-12)
	assert.NotNil(t, stats.LastQueryAt)
}

func TestRecordMatch_EmptyResultCountsQueryOnly(t *testing.T) {
	s := NewService()
	s.RecordMatch(services.MatchResult{})

	stats := s.Stats()
	assert.Equal(t, int64(1), stats.TotalQueries)
	assert.Equal(t, int64(0), stats.TotalHits)
	assert.Equal(t, 0.0, stats.AverageTopScore)
}

func TestStats_PopularTagsOrdering(t *testing.T) {
	s := NewService()
	s.RecordMatch(matchResultFixture(0.5, 1, "python", "aws"))
	s.RecordMatch(matchResultFixture(0.5, 1, "python", "docker"))
	s.RecordMatch(matchResultFixture(0.5, 1, "python"))

	stats := s.Stats()
	require.Len(t, stats.PopularTags, 3)
	assert.Equal(t, TagCount{Tag: "python", Count: 3}, stats.PopularTags[0])
	// Ties break alphabetically.
	assert.Equal(t, TagCount{Tag: "aws", Count: 1}, stats.PopularTags[1])
	assert.Equal(t, TagCount{Tag: "docker", Count: 1}, stats.PopularTags[2])
}

func TestStats_PopularTagsCapped(t *testing.T) {
	s := NewService()
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	s.RecordMatch(matchResultFixture(0.5, 1, tags...))

	stats := s.Stats()
	assert.Len(t, stats.PopularTags, popularTagLimit)
}
