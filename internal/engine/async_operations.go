package engine

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/matchforge/go-match-engine/internal/errors"
	"github.com/matchforge/go-match-engine/internal/listing"
	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

// MatchAsync runs a match query over a source in the background and returns
// the job ID. The result is retrievable via JobResult once the job completes.
func (e *Engine) MatchAsync(sourceName string, query services.MatchQuery) (string, error) {
	e.mu.RLock()
	instance, exists := e.sources[sourceName]
	e.mu.RUnlock()
	if !exists {
		return "", errors.NewSourceNotFoundError(sourceName)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeMatch, sourceName, map[string]string{
		"profile_chars": strconv.Itoa(len(query.ProfileText)),
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		result := e.match(ctx, instance, query)
		e.storeJobResult(jobID, result)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start match job: %w", err)
	}

	return jobID, nil
}

// RefreshSourceAsync replaces a source's listings with the contents of the
// given provider in the background and returns the job ID.
func (e *Engine) RefreshSourceAsync(sourceName string, provider listing.Source) (string, error) {
	e.mu.RLock()
	instance, exists := e.sources[sourceName]
	e.mu.RUnlock()
	if !exists {
		return "", errors.NewSourceNotFoundError(sourceName)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeRefreshSource, sourceName, map[string]string{
		"operation": "refresh_source",
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.executeRefreshSourceJob(ctx, instance, provider, jobID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start refresh job: %w", err)
	}

	return jobID, nil
}

func (e *Engine) executeRefreshSourceJob(ctx context.Context, instance *SourceInstance, provider listing.Source, jobID string) error {
	e.jobManager.UpdateJobProgress(jobID, 0, 2, "fetching listings")

	listings, err := provider.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch listings for source '%s': %w", instance.name, err)
	}

	e.jobManager.UpdateJobProgress(jobID, 1, 2, "replacing listings")
	instance.store.DeleteAll()
	if err := instance.AddListings(listings); err != nil {
		return fmt.Errorf("failed to store fetched listings for source '%s': %w", instance.name, err)
	}

	e.jobManager.UpdateJobProgress(jobID, 2, 2, "done")
	e.logger.Info("source refreshed",
		zap.String("source", instance.name),
		zap.Int("listings", len(listings)),
	)
	return nil
}

// JobResult returns the cached result of a completed async match job.
func (e *Engine) JobResult(jobID string) (services.MatchResult, bool) {
	e.resultsMu.RLock()
	defer e.resultsMu.RUnlock()

	result, ok := e.results[jobID]
	return result, ok
}

func (e *Engine) storeJobResult(jobID string, result services.MatchResult) {
	e.resultsMu.Lock()
	defer e.resultsMu.Unlock()

	// Drop results whose jobs have been cleaned up so the cache cannot grow
	// without bound.
	for id := range e.results {
		if _, err := e.jobManager.GetJob(id); err != nil {
			delete(e.results, id)
		}
	}

	e.results[jobID] = result
}
