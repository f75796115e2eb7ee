// Package ranking applies the similarity scorer across a candidate set and
// produces the ranked, threshold-filtered, labeled result list.
package ranking

import (
	"context"
	"sort"
	"sync"

	"github.com/matchforge/go-match-engine/internal/similarity"
	"github.com/matchforge/go-match-engine/internal/tags"
	"github.com/matchforge/go-match-engine/model"
	"github.com/matchforge/go-match-engine/services"
)

// Options controls one ranking run.
type Options struct {
	// Threshold is the minimum score a listing must reach to be a hit.
	Threshold float64

	// Limit caps the number of returned hits. Zero or negative means no cap.
	Limit int

	// LabelFor, when non-nil, assigns the qualitative label for a hit's
	// score (config.Settings.LabelFor in the production path).
	LabelFor func(score float64) string

	// Tags, when non-nil, is used to attach extracted keywords to each hit.
	Tags *tags.Extractor
}

// Pipeline scores listings against a profile concurrently. Scoring calls are
// independent, so listings are fanned out over a bounded worker pool and the
// results merged before the final sort.
type Pipeline struct {
	workers int
	scorer  func(profileText, candidateText string) float64
}

// NewPipeline creates a ranking pipeline with the given worker bound.
func NewPipeline(workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		workers: workers,
		scorer:  similarity.Score,
	}
}

// Rank scores every listing against the profile text, drops scores below
// opts.Threshold, sorts by score descending (listing ID ascending on ties for
// determinism) and truncates to opts.Limit. The returned total is the number
// of hits above threshold before the limit cut.
//
// A listing that fails to score counts as score 0.0 and falls below any
// positive threshold; one bad candidate never aborts the batch.
func (p *Pipeline) Rank(ctx context.Context, profileText string, listings []model.Listing, opts Options) (hits []services.MatchHit, total int) {
	scores := make([]float64, len(listings))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// A listing with no scorable text keeps score 0.0 without
				// invoking the scorer.
				if listings[i].IsEmpty() {
					continue
				}
				scores[i] = p.scorer(profileText, listings[i].Text())
			}
		}()
	}

feed:
	for i := range listings {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	hits = make([]services.MatchHit, 0, len(listings))
	for i, listing := range listings {
		if scores[i] < opts.Threshold {
			continue
		}
		hit := services.MatchHit{
			Listing: listing,
			Score:   scores[i],
		}
		if opts.LabelFor != nil {
			hit.Label = opts.LabelFor(scores[i])
		}
		hits = append(hits, hit)
	}

	sort.Slice(hits, func(a, b int) bool {
		if hits[a].Score != hits[b].Score {
			return hits[a].Score > hits[b].Score
		}
		return hits[a].Listing.ID < hits[b].Listing.ID
	})

	total = len(hits)
	if opts.Limit > 0 && len(hits) > opts.Limit {
		hits = hits[:opts.Limit]
	}

	if opts.Tags != nil {
		for i := range hits {
			hits[i].Tags = opts.Tags.Extract(hits[i].Listing.Text())
		}
	}

	return hits, total
}
