package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerylCAtieno/career-advisor-agent/internal/config"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/models"
)

type staticGenerator struct{}

func (staticGenerator) Generate(ctx context.Context, profile models.StudentProfile) (*models.RecommendationSet, error) {
	return models.NewRecommendationSet([]byte(`[{"career_path":"Teacher"}]`))
}

func testConfig() *config.Config {
	return &config.Config{
		Port:             "8080",
		GinMode:          "test",
		PublicURL:        "http://localhost:8080",
		CORSAllowOrigins: []string{"*"},
	}
}

func TestRouterRoutes(t *testing.T) {
	router := NewRouter(testConfig(), staticGenerator{}, logger.NewTestLogger(t))

	tests := []struct {
		method string
		path   string
		body   string
		status int
		want   string
	}{
		{http.MethodGet, "/health", "", http.StatusOK, "OK"},
		{http.MethodGet, "/.well-known/agent.json", "", http.StatusOK, "Career Advisor Agent"},
		{http.MethodPost, "/get-advice", `{"interests":"kids","skills":"patience","academics":"B.Ed"}`, http.StatusOK, `"career_path":"Teacher"`},
		{http.MethodPost, "/get-advice", `{"interests":"kids"}`, http.StatusBadRequest, "Invalid input."},
		{http.MethodGet, "/metrics", "", http.StatusOK, "advice_requests_total"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
			assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
		})
	}
}
