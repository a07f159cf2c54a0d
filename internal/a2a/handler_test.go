package a2a

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

const reply = `[{"career_path":"Cloud Engineer","description":"Runs India's cloud migration.","skills_required":["AWS","Linux"],"job_roles":["Cloud Engineer","DevOps Engineer"],"learning_pathway":"Start an AWS certification.","salary_expectations_inr":"₹5.0 - ₹9.0 LPA"}]`

type stubGenerator struct {
	err      error
	profiles []models.StudentProfile
}

func (s *stubGenerator) Generate(ctx context.Context, profile models.StudentProfile) (*models.RecommendationSet, error) {
	s.profiles = append(s.profiles, profile)
	if s.err != nil {
		return nil, s.err
	}
	return models.NewRecommendationSet([]byte(reply))
}

func setup(t *testing.T, gen Generator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(gen, NewAgentCard("http://localhost:8080"), logger.NewTestLogger(t)).RegisterRoutes(router)
	return router
}

func post(t *testing.T, router *gin.Engine, body string) JSONRPCResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/a2a/advisor", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func taskOf(t *testing.T, resp JSONRPCResponse) TaskResult {
	t.Helper()
	require.Nil(t, resp.Error)
	raw, err := json.Marshal(resp.Result)
	require.NoError(t, err)
	var task TaskResult
	require.NoError(t, json.Unmarshal(raw, &task))
	return task
}

func rpcBody(method string, parts string) string {
	return `{"jsonrpc":"2.0","id":"req-1","method":"` + method + `","params":{"message":{"kind":"message","role":"user","parts":` + parts + `}}}`
}

func TestHandleAdvisorTextPart(t *testing.T) {
	gen := &stubGenerator{}
	router := setup(t, gen)

	resp := post(t, router, rpcBody("message/send", `[{"kind":"text","text":"interests: AI, robotics\nskills: Python; academics: Computer Science"}]`))

	assert.Equal(t, "req-1", resp.ID)
	task := taskOf(t, resp)
	assert.Equal(t, StateCompleted, task.Status.State)
	assert.Equal(t, "task", task.Kind)
	require.Len(t, gen.profiles, 1)
	assert.Equal(t, models.StudentProfile{Interests: "AI, robotics", Skills: "Python", Academics: "Computer Science"}, gen.profiles[0])

	require.Len(t, task.Artifacts, 1)
	parts := task.Artifacts[0].Parts
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0].Text, "## 1. Cloud Engineer")
	assert.Contains(t, parts[0].Text, "₹5.0 - ₹9.0 LPA")
	assert.Equal(t, "data", parts[1].Kind)
	assert.JSONEq(t, reply, string(parts[1].Data))
}

func TestHandleAdvisorDataPart(t *testing.T) {
	gen := &stubGenerator{}
	router := setup(t, gen)

	resp := post(t, router, rpcBody("agent/task", `[{"kind":"data","data":{"interests":"Design","skills":"Figma","academics":"B.Des"}}]`))

	task := taskOf(t, resp)
	assert.Equal(t, StateCompleted, task.Status.State)
	require.Len(t, gen.profiles, 1)
	assert.Equal(t, "Figma", gen.profiles[0].Skills)
}

func TestHandleAdvisorDirectMessage(t *testing.T) {
	gen := &stubGenerator{}
	router := setup(t, gen)

	resp := post(t, router, `{"message":{"kind":"message","role":"user","parts":[{"kind":"text","text":"interests: music skills: piano academics: Arts"}]}}`)

	task := taskOf(t, resp)
	assert.Equal(t, StateCompleted, task.Status.State)
	assert.Equal(t, models.StudentProfile{Interests: "music", Skills: "piano", Academics: "Arts"}, gen.profiles[0])
}

func TestHandleAdvisorMissingFields(t *testing.T) {
	gen := &stubGenerator{}
	router := setup(t, gen)

	resp := post(t, router, rpcBody("message/send", `[{"kind":"text","text":"interests: AI"}]`))

	task := taskOf(t, resp)
	assert.Equal(t, StateInputRequired, task.Status.State)
	require.NotNil(t, task.Status.Message)
	assert.Equal(t, advisor.InvalidInputMessage, task.Status.Message.Parts[0].Text)
	assert.Empty(t, gen.profiles)
}

func TestHandleAdvisorGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: &advisor.Error{Kind: advisor.KindParse, Message: "The AI model could not process the request. Details: bad json"}}
	router := setup(t, gen)

	resp := post(t, router, rpcBody("message/send", `[{"kind":"data","data":{"interests":"a","skills":"b","academics":"c"}}]`))

	task := taskOf(t, resp)
	assert.Equal(t, StateFailed, task.Status.State)
	assert.Contains(t, task.Status.Message.Parts[0].Text, "bad json")

	gen.err = errors.New("secret internals")
	task = taskOf(t, post(t, router, rpcBody("message/send", `[{"kind":"data","data":{"interests":"a","skills":"b","academics":"c"}}]`)))
	assert.Equal(t, advisor.InternalErrorMessage, task.Status.Message.Parts[0].Text)
}

func TestHandleAdvisorProtocolErrors(t *testing.T) {
	router := setup(t, &stubGenerator{})

	tests := []struct {
		name string
		body string
		code int
	}{
		{"not json", `{"jsonrpc":`, CodeParseError},
		{"wrong version", `{"jsonrpc":"1.0","id":"1","method":"message/send"}`, CodeInvalidRequest},
		{"unknown method", `{"jsonrpc":"2.0","id":"1","method":"tasks/cancel"}`, CodeMethodNotFound},
		{"bad params", `{"jsonrpc":"2.0","id":"1","method":"message/send","params":"oops"}`, CodeInvalidParams},
		{"empty object", `{}`, CodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, router, tt.body)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestServeAgentCard(t *testing.T) {
	router := setup(t, &stubGenerator{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var card AgentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Career Advisor Agent", card.Name)
	assert.Equal(t, "http://localhost:8080/a2a/advisor", card.URL)
	assert.Equal(t, "http://localhost:8080/get-advice", card.Endpoints["advice"])
	require.Len(t, card.Skills, 1)
}

func TestExtractProfileFromHistory(t *testing.T) {
	msg := Message{
		Parts: []MessagePart{
			{Kind: "data", Data: json.RawMessage(`[
				{"kind":"text","text":"<p>interests: chemistry, skills: lab work, academics: BSc</p>"},
				{"kind":"text","text":"Generating..."}
			]`)},
		},
	}

	profile, missing := ExtractProfile(msg)
	assert.Empty(t, missing)
	assert.Equal(t, models.StudentProfile{Interests: "chemistry", Skills: "lab work", Academics: "BSc"}, profile)
}

func TestFormatRecommendationsFallsBackToJSON(t *testing.T) {
	set, err := models.NewRecommendationSet([]byte(`[{"career_path": 5}]`))
	require.NoError(t, err)

	text := FormatRecommendations(models.StudentProfile{}, set)
	assert.Contains(t, text, "```json")
	assert.Contains(t, text, `"career_path": 5`)
}
