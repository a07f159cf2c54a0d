package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/metrics"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

// ExpectedRecommendations is how many entries the prompt asks for.
const ExpectedRecommendations = 3

// Advisor turns a student profile into career recommendations.
type Advisor struct {
	generator ContentGenerator
	logger    logger.Logger
	timeout   time.Duration
}

type Option func(*Advisor)

// WithTimeout bounds each model call. The default is no bound.
func WithTimeout(d time.Duration) Option {
	return func(a *Advisor) {
		a.timeout = d
	}
}

func New(generator ContentGenerator, log logger.Logger, opts ...Option) *Advisor {
	a := &Advisor{
		generator: generator,
		logger:    log.With(map[string]interface{}{"component": "advisor", "model": generator.ModelName()}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate makes exactly one model call. Any returned error is an *Error.
func (a *Advisor) Generate(ctx context.Context, profile models.StudentProfile) (*models.RecommendationSet, error) {
	started := time.Now()
	model := a.generator.ModelName()

	metrics.InFlightGenerations.Inc()
	defer metrics.InFlightGenerations.Dec()

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	prompt := BuildPrompt(profile)
	a.logger.Debug("calling model", map[string]interface{}{"prompt_bytes": len(prompt)})

	reply, err := a.generator.GenerateText(ctx, prompt)
	if err != nil {
		metrics.ObserveGeneration(model, metrics.OutcomeUpstream, started)
		a.logger.Error("An error occurred during AI generation", map[string]interface{}{
			"error":       err.Error(),
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return nil, modelError(KindUpstream, err)
	}

	cleaned := StripFence(reply)
	set, err := models.NewRecommendationSet([]byte(cleaned))
	if err != nil {
		metrics.ObserveGeneration(model, metrics.OutcomeParse, started)
		a.logger.Error("An error occurred during AI generation", map[string]interface{}{
			"error":       err.Error(),
			"reply_bytes": len(reply),
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return nil, modelError(KindParse, fmt.Errorf("parse model reply: %w", err))
	}

	a.reportShape(set)

	metrics.ObserveGeneration(model, metrics.OutcomeSuccess, started)
	metrics.RecommendationsReturned.WithLabelValues(model).Observe(float64(set.Len()))
	a.logger.Info("recommendations generated", map[string]interface{}{
		"count":       set.Len(),
		"reply_bytes": len(reply),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return set, nil
}

// reportShape logs, but never rejects, replies that stray from the prompt.
func (a *Advisor) reportShape(set *models.RecommendationSet) {
	if set.Len() != ExpectedRecommendations {
		a.logger.Warn("unexpected recommendation count", map[string]interface{}{
			"expected": ExpectedRecommendations,
			"count":    set.Len(),
		})
	}

	issues, err := ShapeIssues(set.Raw())
	if err != nil {
		a.logger.Warn("could not check reply shape", map[string]interface{}{"error": err.Error()})
		return
	}
	if len(issues) > 0 {
		a.logger.Warn("reply does not match requested shape", map[string]interface{}{"issues": issues})
	}
}
