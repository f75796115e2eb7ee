package engine_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchforge/go-match-engine/internal/listing"
	internaltesting "github.com/matchforge/go-match-engine/internal/testing"
	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

// failingSource always fails to fetch.
type failingSource struct{}

func (failingSource) Fetch(_ context.Context) ([]model.Listing, error) {
	return nil, fmt.Errorf("provider unreachable")
}

func TestMatchAsync(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)
	internaltesting.SeedTestSource(t, eng, "jobs")

	threshold := 0.0
	jobID, err := eng.MatchAsync("jobs", services.MatchQuery{
		ProfileText: "experienced python developer with aws and cloud skills",
		Threshold:   &threshold,
	})
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	job := internaltesting.WaitForJobCompletion(t, eng.JobManager(), jobID, internaltesting.DefaultJobPollingOptions())
	internaltesting.AssertJobCompleted(t, job, model.JobTypeMatch, "jobs")

	result, ok := eng.JobResult(jobID)
	require.True(t, ok, "a completed match job should have a cached result")
	assert.Equal(t, 3, result.Scanned)
	require.NotEmpty(t, result.Hits)
	assert.Equal(t, "listing-1", result.Hits[0].Listing.ID)
}

func TestMatchAsync_UnknownSource(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)

	_, err := eng.MatchAsync("missing", services.MatchQuery{ProfileText: "anything"})
	assert.Error(t, err)
}

func TestJobResult_UnknownJob(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)

	_, ok := eng.JobResult("no-such-job")
	assert.False(t, ok)
}

func TestRefreshSourceAsync(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)
	internaltesting.SeedTestSource(t, eng, "jobs")

	replacement := listing.SliceSource{
		{ID: "new-1", Title: "Platform Engineer", Description: "kubernetes and terraform"},
		{ID: "new-2", Title: "SRE", Description: "observability and incident response"},
	}

	jobID, err := eng.RefreshSourceAsync("jobs", replacement)
	require.NoError(t, err)

	job := internaltesting.WaitForJobCompletion(t, eng.JobManager(), jobID, internaltesting.DefaultJobPollingOptions())
	internaltesting.AssertJobCompleted(t, job, model.JobTypeRefreshSource, "jobs")

	source, err := eng.Source("jobs")
	require.NoError(t, err)
	assert.Equal(t, 2, source.Count(), "refresh should replace the old listings")

	_, err = source.Listing("listing-1")
	assert.Error(t, err, "pre-refresh listings should be gone")

	got, err := source.Listing("new-1")
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", got.Title)
}

func TestRefreshSourceAsync_ProviderFailure(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)
	internaltesting.SeedTestSource(t, eng, "jobs")

	jobID, err := eng.RefreshSourceAsync("jobs", failingSource{})
	require.NoError(t, err)

	job := internaltesting.WaitForJobFailure(t, eng.JobManager(), jobID, internaltesting.DefaultJobPollingOptions())
	assert.Contains(t, job.Error, "provider unreachable")

	source, err := eng.Source("jobs")
	require.NoError(t, err)
	assert.Equal(t, 3, source.Count(), "a failed fetch must not wipe the existing listings")
}

func TestRefreshSourceAsync_UnknownSource(t *testing.T) {
	eng := internaltesting.CreateTestEngine(t)

	_, err := eng.RefreshSourceAsync("missing", listing.SliceSource{})
	assert.Error(t, err)
}
