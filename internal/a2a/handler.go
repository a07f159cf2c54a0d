package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/metrics"
	"github.com/BerylCAtieno/career-advisor-agent/internal/middleware"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

const transportA2A = "a2a"

// Generator is the part of advisor.Advisor the A2A handler depends on.
type Generator interface {
	Generate(ctx context.Context, profile models.StudentProfile) (*models.RecommendationSet, error)
}

type Handler struct {
	generator Generator
	card      AgentCard
	logger    logger.Logger
}

func NewHandler(generator Generator, card AgentCard, log logger.Logger) *Handler {
	return &Handler{
		generator: generator,
		card:      card,
		logger:    log.With(map[string]interface{}{"component": "a2a"}),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/.well-known/agent.json", h.ServeAgentCard)
	r.POST("/a2a/advisor", h.HandleAdvisor)
}

func (h *Handler) ServeAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.card)
}

// HandleAdvisor accepts a JSON-RPC request or a bare message-params body.
func (h *Handler) HandleAdvisor(c *gin.Context) {
	log := h.logger.With(map[string]interface{}{"request_id": middleware.RequestIDFromContext(c)})

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("failed to read request body", map[string]interface{}{"error": err.Error()})
		h.sendError(c, nil, CodeParseError, "Failed to read request body")
		return
	}

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(body, &rpcReq); err != nil {
		log.Warn("request is not JSON", map[string]interface{}{"error": err.Error()})
		h.sendError(c, nil, CodeParseError, "Invalid request format")
		return
	}

	if rpcReq.JSONRPC == "" && rpcReq.Method == "" {
		var params MessageParams
		if err := json.Unmarshal(body, &params); err != nil || len(params.Message.Parts) == 0 {
			h.sendError(c, nil, CodeInvalidRequest, "Invalid request format")
			return
		}
		log.Debug("handling direct message", nil)
		h.sendResult(c, nil, h.runTask(c, log, params.Message))
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		log.Warn("invalid JSON-RPC version", map[string]interface{}{"jsonrpc": rpcReq.JSONRPC})
		h.sendError(c, rpcReq.ID, CodeInvalidRequest, "Invalid JSON-RPC version")
		return
	}

	switch rpcReq.Method {
	case "message/send", "agent/task":
		var params MessageParams
		if err := json.Unmarshal(rpcReq.Params, &params); err != nil {
			log.Warn("invalid params", map[string]interface{}{"error": err.Error()})
			h.sendError(c, rpcReq.ID, CodeInvalidParams, "Invalid parameters")
			return
		}
		h.sendResult(c, rpcReq.ID, h.runTask(c, log, params.Message))
	default:
		log.Warn("unknown method", map[string]interface{}{"method": rpcReq.Method})
		h.sendError(c, rpcReq.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", rpcReq.Method))
	}
}

func (h *Handler) runTask(c *gin.Context, log logger.Logger, msg Message) TaskResult {
	task := newTask(msg)

	profile, missing := ExtractProfile(msg)
	if len(missing) > 0 {
		metrics.ObserveRequest(transportA2A, metrics.OutcomeValidation)
		log.Warn("profile incomplete", map[string]interface{}{"missing": missing})
		return task.finish(StateInputRequired, advisor.InvalidInputMessage)
	}

	ctx := context.WithoutCancel(c.Request.Context())
	set, err := h.generator.Generate(ctx, profile)
	if err != nil {
		outcome, message := failure(err)
		metrics.ObserveRequest(transportA2A, outcome)
		log.Error("An error occurred during AI generation", map[string]interface{}{"error": err.Error()})
		return task.finish(StateFailed, message)
	}

	metrics.ObserveRequest(transportA2A, metrics.OutcomeSuccess)
	text := FormatRecommendations(profile, set)
	result := task.finish(StateCompleted, text)
	result.Artifacts = []Artifact{
		{
			ArtifactID: uuid.New().String(),
			Name:       "Career Recommendations",
			Parts:      []MessagePart{TextPart(text), DataPart(set.Raw())},
		},
	}
	return result
}

func failure(err error) (string, string) {
	var advErr *advisor.Error
	if !errors.As(err, &advErr) {
		return metrics.OutcomeInternal, advisor.InternalErrorMessage
	}
	switch advErr.Kind {
	case advisor.KindUpstream:
		return metrics.OutcomeUpstream, advErr.Message
	case advisor.KindParse:
		return metrics.OutcomeParse, advErr.Message
	case advisor.KindValidation:
		return metrics.OutcomeValidation, advisor.InvalidInputMessage
	default:
		return metrics.OutcomeInternal, advisor.InternalErrorMessage
	}
}

type task struct {
	id        string
	contextID string
	request   Message
}

func newTask(msg Message) task {
	t := task{id: msg.TaskID, contextID: msg.ContextID, request: msg}
	if t.id == "" {
		t.id = uuid.New().String()
	}
	if t.contextID == "" {
		t.contextID = uuid.New().String()
	}
	return t
}

func (t task) finish(state, text string) TaskResult {
	return TaskResult{
		ID:        t.id,
		ContextID: t.contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &Message{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.New().String(),
				TaskID:    t.id,
				ContextID: t.contextID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
		History: []Message{t.request},
	}
}

var profileKeyPattern = regexp.MustCompile(`(?i)\b(interests|skills|academics)\s*:`)

// ExtractProfile gathers the three profile fields from data and text parts.
// Later parts override earlier ones. It returns the names of missing fields.
func ExtractProfile(msg Message) (models.StudentProfile, []string) {
	fields := make(map[string]string)

	for _, part := range msg.Parts {
		switch part.Kind {
		case "text":
			for k, v := range parseProfileText(part.Text) {
				fields[k] = v
			}
		case "data":
			for k, v := range parseProfileData(part.Data) {
				fields[k] = v
			}
		}
	}

	var missing []string
	for _, key := range []string{"interests", "skills", "academics"} {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}

	return models.StudentProfile{
		Interests: fields["interests"],
		Skills:    fields["skills"],
		Academics: fields["academics"],
	}, missing
}

// parseProfileText reads "interests: ..., skills: ..., academics: ..." where
// pairs may be separated by commas, semicolons or newlines.
func parseProfileText(text string) map[string]string {
	text = strings.ReplaceAll(text, "<p>", "")
	text = strings.ReplaceAll(text, "</p>", "\n")

	out := make(map[string]string)
	locs := profileKeyPattern.FindAllStringSubmatchIndex(text, -1)
	for i, loc := range locs {
		key := strings.ToLower(text[loc[2]:loc[3]])
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		value := strings.TrimSpace(text[loc[1]:end])
		value = strings.TrimSpace(strings.TrimRight(value, ",;"))
		if value != "" {
			out[key] = value
		}
	}
	return out
}

// parseProfileData accepts an object with profile keys, or a conversation
// history array whose most recent text entry holds the profile.
func parseProfileData(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err == nil {
		out := make(map[string]string)
		for _, key := range []string{"interests", "skills", "academics"} {
			if v, ok := obj[key]; ok {
				out[key] = jsonText(v)
			}
		}
		return out
	}

	var history []map[string]interface{}
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil
	}
	for i := len(history) - 1; i >= 0; i-- {
		if kind, _ := history[i]["kind"].(string); kind != "text" {
			continue
		}
		text, _ := history[i]["text"].(string)
		if fields := parseProfileText(text); len(fields) > 0 {
			return fields
		}
	}
	return nil
}

func jsonText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func (h *Handler) sendResult(c *gin.Context, id interface{}, result TaskResult) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// JSON-RPC errors are sent with 200 OK.
func (h *Handler) sendError(c *gin.Context, id interface{}, code int, message string) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}
