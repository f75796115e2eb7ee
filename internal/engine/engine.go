// Package engine coordinates the match engine: named listing sources, the
// ranking pipeline, background jobs, and match analytics.
package engine

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matchforge/go-match-engine/config"
	"github.com/matchforge/go-match-engine/internal/analytics"
	"github.com/matchforge/go-match-engine/internal/errors"
	"github.com/matchforge/go-match-engine/internal/jobs"
	"github.com/matchforge/go-match-engine/internal/ranking"
	"github.com/matchforge/go-match-engine/internal/tags"
	"github.com/matchforge/go-match-engine/services"
)

// Engine manages named listing sources and runs match queries over them.
// It implements the services.SourceManager interface.
type Engine struct {
	mu       sync.RWMutex
	sources  map[string]*SourceInstance
	settings config.Settings

	pipeline   *ranking.Pipeline
	skills     *tags.Extractor
	topics     *tags.Extractor
	jobManager *jobs.Manager
	analytics  *analytics.Service
	logger     *zap.Logger

	resultsMu sync.RWMutex
	results   map[string]services.MatchResult // async match results by job ID
}

// NewEngine creates a match engine with the given settings. Defaults are
// applied to zero-valued settings; a nil logger falls back to zap.NewNop.
// The returned engine's job manager is already started; call Close to stop it.
func NewEngine(settings config.Settings, logger *zap.Logger) *Engine {
	settings.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	skillVocab := tags.DefaultSkills
	if len(settings.SkillKeywords) > 0 {
		skillVocab = settings.SkillKeywords
	}
	topicVocab := tags.DefaultTopics
	if len(settings.TopicKeywords) > 0 {
		topicVocab = settings.TopicKeywords
	}

	eng := &Engine{
		sources:    make(map[string]*SourceInstance),
		settings:   settings,
		pipeline:   ranking.NewPipeline(settings.MatchWorkers),
		skills:     tags.NewExtractor(skillVocab),
		topics:     tags.NewExtractor(topicVocab),
		jobManager: jobs.NewManager(settings.JobWorkers, logger.Named("jobs")),
		analytics:  analytics.NewService(),
		logger:     logger,
		results:    make(map[string]services.MatchResult),
	}
	eng.jobManager.Start()
	return eng
}

// Close stops the engine's background workers.
func (e *Engine) Close() {
	e.jobManager.Stop()
}

// Settings returns a copy of the engine settings.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// JobManager exposes the background job manager for status queries.
func (e *Engine) JobManager() *jobs.Manager {
	return e.jobManager
}

// Analytics exposes the match statistics collector.
func (e *Engine) Analytics() *analytics.Service {
	return e.analytics
}

// CreateSource registers a new, empty listing source.
func (e *Engine) CreateSource(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError("name", "source name cannot be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.sources[name]; exists {
		return errors.NewSourceAlreadyExistsError(name)
	}
	e.sources[name] = newSourceInstance(name, e)
	e.logger.Info("source created", zap.String("source", name))
	return nil
}

// DeleteSource removes a source and all its listings.
func (e *Engine) DeleteSource(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.sources[name]; !exists {
		return errors.NewSourceNotFoundError(name)
	}
	delete(e.sources, name)
	e.logger.Info("source deleted", zap.String("source", name))
	return nil
}

// SourceNames returns the names of all sources, sorted.
func (e *Engine) SourceNames() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.sources))
	for name := range e.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the accessor for a named source.
func (e *Engine) Source(name string) (services.SourceAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.sources[name]
	if !exists {
		return nil, errors.NewSourceNotFoundError(name)
	}
	return instance, nil
}

// ExtractTags runs the configured tag extractor over a text.
// Vocabulary is "skills" (default) or "topics".
func (e *Engine) ExtractTags(text, vocabulary string) []string {
	return e.extractorFor(vocabulary).Extract(text)
}

func (e *Engine) extractorFor(vocabulary string) *tags.Extractor {
	if strings.EqualFold(vocabulary, "topics") {
		return e.topics
	}
	return e.skills
}

// match runs one match query over a source instance.
func (e *Engine) match(ctx context.Context, instance *SourceInstance, query services.MatchQuery) services.MatchResult {
	startTime := time.Now()

	threshold := e.settings.ScoreThreshold
	if query.Threshold != nil {
		threshold = *query.Threshold
	}
	limit := e.settings.MaxResults
	if query.Limit != nil {
		limit = *query.Limit
	}

	opts := ranking.Options{
		Threshold: threshold,
		Limit:     limit,
		LabelFor:  e.settings.LabelFor,
	}
	if query.WithTags {
		opts.Tags = e.extractorFor(query.Vocabulary)
	}

	listings := instance.store.All()
	hits, total := e.pipeline.Rank(ctx, query.ProfileText, listings, opts)

	result := services.MatchResult{
		Hits:      hits,
		Total:     total,
		Scanned:   len(listings),
		Threshold: threshold,
		Took:      time.Since(startTime).Milliseconds(),
		QueryID:   uuid.New().String(),
		Truncated: total > len(hits),
	}

	e.analytics.RecordMatch(result)
	e.logger.Debug("match query executed",
		zap.String("source", instance.name),
		zap.String("query_id", result.QueryID),
		zap.Int("scanned", result.Scanned),
		zap.Int("hits", result.Total),
		zap.Int64("took_ms", result.Took),
	)
	return result
}
