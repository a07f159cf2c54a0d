package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/metrics"
	"github.com/BerylCAtieno/career-advisor-agent/internal/middleware"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

const transportHTTP = "http"

// Generator is the part of advisor.Advisor the handlers depend on.
type Generator interface {
	Generate(ctx context.Context, profile models.StudentProfile) (*models.RecommendationSet, error)
}

type AdviceHandler struct {
	generator Generator
	logger    logger.Logger
}

func NewAdviceHandler(generator Generator, log logger.Logger) *AdviceHandler {
	return &AdviceHandler{
		generator: generator,
		logger:    log.With(map[string]interface{}{"component": "advice_handler"}),
	}
}

// RegisterRoutes attaches the advice endpoint.
func (h *AdviceHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/get-advice", h.GetAdvice)
}

// GetAdvice handles POST /get-advice.
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	log := h.logger.With(map[string]interface{}{"request_id": middleware.RequestIDFromContext(c)})

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, log, advisor.InternalError(err))
		return
	}

	profile, err := ParseProfile(body)
	if err != nil {
		h.fail(c, log, err)
		return
	}

	// The model call is not cancelled when the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	recommendations, err := h.generator.Generate(ctx, profile)
	if err != nil {
		h.fail(c, log, err)
		return
	}

	metrics.ObserveRequest(transportHTTP, metrics.OutcomeSuccess)
	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

func (h *AdviceHandler) fail(c *gin.Context, log logger.Logger, err error) {
	status, message, outcome := errorResponse(err)
	metrics.ObserveRequest(transportHTTP, outcome)

	log.Error("An error occurred in /get-advice", map[string]interface{}{
		"status": status,
		"kind":   advisor.KindOf(err).String(),
		"error":  err.Error(),
	})
	c.JSON(status, gin.H{"error": message})
}

// errorResponse maps an error to status, caller-facing message and metric outcome.
func errorResponse(err error) (int, string, string) {
	var advErr *advisor.Error
	if !errors.As(err, &advErr) {
		return http.StatusInternalServerError, advisor.InternalErrorMessage, metrics.OutcomeInternal
	}

	switch advErr.Kind {
	case advisor.KindValidation:
		return http.StatusBadRequest, advisor.InvalidInputMessage, metrics.OutcomeValidation
	case advisor.KindUpstream:
		return http.StatusInternalServerError, advErr.Message, metrics.OutcomeUpstream
	case advisor.KindParse:
		return http.StatusInternalServerError, advErr.Message, metrics.OutcomeParse
	default:
		return http.StatusInternalServerError, advisor.InternalErrorMessage, metrics.OutcomeInternal
	}
}
