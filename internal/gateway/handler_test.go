package gateway

import (
	"bytes"
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

	"github.com/AliZeynalov/decision-arena/internal/models"
	"github.com/AliZeynalov/decision-arena/internal/provider"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRunner struct {
	report string
	meta   string
	err    error

	gotProblem string
	gotRisk    models.RiskMode
	gotDepth   int
	calls      int
}

func (s *stubRunner) Run(_ context.Context, problem string, risk models.RiskMode, depth int) (string, string, error) {
	s.calls++
	s.gotProblem = problem
	s.gotRisk = risk
	s.gotDepth = depth
	return s.report, s.meta, s.err
}

func doRequest(t *testing.T, runner Runner, body any) *httptest.ResponseRecorder {
	t.Helper()

	r := NewRouter(NewHandler(runner))

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/v1/arena/runs", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunArenaSuccess(t *testing.T) {
	runner := &stubRunner{report: "# report", meta: "Models used: ..."}

	w := doRequest(t, runner, models.ArenaRequest{
		Problem:  "Launch a product in 30 days",
		RiskMode: "Balanced",
		Depth:    3,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp models.ArenaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "# report", resp.Report)
	assert.Equal(t, "Models used: ...", resp.Meta)
	assert.NotEmpty(t, resp.RequestID)

	assert.Equal(t, "Launch a product in 30 days", runner.gotProblem)
	assert.Equal(t, models.RiskBalanced, runner.gotRisk)
	assert.Equal(t, 3, runner.gotDepth)
}

func TestRunArenaBlankProblemIsNotAnError(t *testing.T) {
	runner := &stubRunner{report: "Please enter a decision/goal to analyze.", meta: ""}

	w := doRequest(t, runner, models.ArenaRequest{Problem: "", RiskMode: "Balanced", Depth: 3})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, runner.calls)
}

func TestRunArenaValidationFailure(t *testing.T) {
	runner := &stubRunner{}

	w := doRequest(t, runner, models.ArenaRequest{Problem: "x", RiskMode: "Medium", Depth: 9})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, runner.calls, "runner must not be called for invalid input")

	var resp struct {
		Error struct {
			Type    string   `json:"type"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.NotEmpty(t, resp.Error.Details)
}

func TestRunArenaMalformedBody(t *testing.T) {
	r := NewRouter(NewHandler(&stubRunner{}))

	req := httptest.NewRequest(http.MethodPost, "/v1/arena/runs", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunArenaProviderExhaustion(t *testing.T) {
	runner := &stubRunner{err: &provider.AllAttemptsFailedError{
		Attempts: 4,
		Err:      errors.New("rate limited"),
	}}

	w := doRequest(t, runner, models.ArenaRequest{Problem: "x", RiskMode: "Balanced", Depth: 3})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "provider_error")
	assert.Contains(t, w.Body.String(), "rate limited")
}

func TestRunArenaConfigurationFailure(t *testing.T) {
	runner := &stubRunner{err: &provider.ConfigurationError{Missing: "GROQ_API_KEY"}}

	w := doRequest(t, runner, models.ArenaRequest{Problem: "x", RiskMode: "Balanced", Depth: 3})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "configuration_error")
	assert.Contains(t, w.Body.String(), "GROQ_API_KEY")
}

func TestRequestIDPassthrough(t *testing.T) {
	r := NewRouter(NewHandler(&stubRunner{report: "r", meta: "m"}))

	body, _ := json.Marshal(models.ArenaRequest{Problem: "x", RiskMode: "Balanced", Depth: 3})
	req := httptest.NewRequest(http.MethodPost, "/v1/arena/runs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "run_client01")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "run_client01", w.Header().Get("X-Request-ID"))

	var resp models.ArenaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "run_client01", resp.RequestID)
}

func TestRequestIDUnsafeValuesReplaced(t *testing.T) {
	unsafe := []string{
		strings.Repeat("a", 65),
		"bad value with spaces",
		"inject\"quote",
	}

	for _, header := range unsafe {
		r := NewRouter(NewHandler(&stubRunner{report: "r", meta: "m"}))

		body, _ := json.Marshal(models.ArenaRequest{Problem: "x", RiskMode: "Balanced", Depth: 3})
		req := httptest.NewRequest(http.MethodPost, "/v1/arena/runs", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", header)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		got := w.Header().Get("X-Request-ID")
		assert.NotEqual(t, header, got, "unsafe header %q must not be echoed", header)
		assert.True(t, strings.HasPrefix(got, "run_"), "got %q", got)
	}
}

func TestHealth(t *testing.T) {
	r := NewRouter(NewHandler(&stubRunner{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
