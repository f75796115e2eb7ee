// Package testing provides utilities and helpers for testing the match engine.
package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchforge/go-match-engine/config"
	"github.com/matchforge/go-match-engine/internal/engine"
	"github.com/matchforge/go-match-engine/internal/jobs"
	"github.com/matchforge/go-match-engine/model"
)

// CreateTestEngine creates an engine for testing with automatic shutdown.
func CreateTestEngine(t *testing.T) *engine.Engine {
	eng := engine.NewEngine(config.Settings{
		MatchWorkers: 2,
		JobWorkers:   2,
	}, nil)
	t.Cleanup(eng.Close)
	return eng
}

// SeedTestSource creates a source and fills it with a small set of listings
// covering clearly relevant and clearly irrelevant candidates.
func SeedTestSource(t *testing.T, eng *engine.Engine, sourceName string) []model.Listing {
	require.NoError(t, eng.CreateSource(sourceName), "failed to create test source")

	listings := []model.Listing{
		{
			ID:          "listing-1",
			Title:       "Senior Python Developer",
			Description: "Building cloud services on aws with python and docker",
		},
		{
			ID:          "listing-2",
			Title:       "Data Engineer",
			Description: "Python pipelines, sql warehouses and aws infrastructure",
		},
		{
			ID:          "listing-3",
			Title:       "Retail Store Manager",
			Description: "Managing shifts, inventory and customer complaints",
		},
	}

	source, err := eng.Source(sourceName)
	require.NoError(t, err, "failed to get source accessor")
	require.NoError(t, source.AddListings(listings), "failed to add test listings")

	return listings
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 25 * time.Millisecond,
	}
}

// WaitForJobCompletion polls a job until it completes or times out. A job that
// ends up failed fails the test.
func WaitForJobCompletion(t *testing.T, jobManager *jobs.Manager, jobID string, opts JobPollingOptions) *model.Job {
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("job %s did not complete within %v", jobID, opts.Timeout)
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted:
				return job
			case model.JobStatusFailed:
				t.Fatalf("job %s failed: %s", jobID, job.Error)
			}
		}
	}
}

// WaitForJobFailure polls a job until it fails or times out.
func WaitForJobFailure(t *testing.T, jobManager *jobs.Manager, jobID string, opts JobPollingOptions) *model.Job {
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("job %s did not fail within %v", jobID, opts.Timeout)
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "failed to get job status")

			switch job.Status {
			case model.JobStatusFailed:
				return job
			case model.JobStatusCompleted:
				t.Fatalf("job %s completed but was expected to fail", jobID)
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedSource string) {
	assert.Equal(t, model.JobStatusCompleted, job.Status, "job should be completed")
	assert.Equal(t, expectedType, job.Type, "job type should match")
	assert.Equal(t, expectedSource, job.SourceName, "job source name should match")
	assert.NotNil(t, job.CompletedAt, "job should have a completion timestamp")
	assert.Empty(t, job.Error, "job should not carry an error")
}
