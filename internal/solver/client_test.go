package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/models"
)

// fakeCompletionServer returns an httptest server that answers every chat
// completion request with the given message content.
func fakeCompletionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-5",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func testClient(srv *httptest.Server) *Client {
	return New(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL + "/v1",
		Model:     "gpt-5",
		MaxTokens: 1500,
		Timeout:   5 * time.Second,
	})
}

func validRequest() models.SolveRequest {
	return models.SolveRequest{
		ProblemText: "Solve for x: 2x + 5 = 15",
		Category:    "algebra",
		Difficulty:  1,
	}
}

func TestSolve_WellFormedResponse(t *testing.T) {
	body := `{
		"steps": [
			{"step": 1, "description": "Subtract 5 from both sides", "formula": "2x = 10", "result": "2x = 10"},
			{"step": 2, "description": "Divide both sides by 2", "formula": "x = 5", "result": "x = 5"}
		],
		"explanation": "Isolate x with inverse operations.",
		"concepts": ["linear equations"],
		"finalAnswer": "x = 5",
		"confidence": 95
	}`
	srv := fakeCompletionServer(t, http.StatusOK, body)
	defer srv.Close()

	result, err := testClient(srv).Solve(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "x = 5", result.FinalAnswer)
	assert.Equal(t, 95, result.Confidence)
	assert.Len(t, result.Data.Steps, 2)
	assert.Equal(t, "Subtract 5 from both sides", result.Data.Steps[0].Description)
	assert.Equal(t, []string{"linear equations"}, result.Data.Concepts)
	assert.GreaterOrEqual(t, result.TimeToSolve, int64(0))
}

func TestSolve_NonJSONOutputFallsBack(t *testing.T) {
	srv := fakeCompletionServer(t, http.StatusOK, "I cannot answer that in JSON, sorry.")
	defer srv.Close()

	result, err := testClient(srv).Solve(context.Background(), validRequest())

	require.NoError(t, err, "malformed model output must never surface as an error")
	assert.Equal(t, FallbackAnswer, result.FinalAnswer)
	assert.Equal(t, FallbackConfidence, result.Confidence)
	assert.Empty(t, result.Data.Steps)
	assert.Empty(t, result.Data.Concepts)
	assert.Empty(t, result.Data.Explanation)
}

func TestSolve_MissingFinalAnswerFallsBack(t *testing.T) {
	body := `{"steps": [], "explanation": "shrug", "confidence": 40}`
	srv := fakeCompletionServer(t, http.StatusOK, body)
	defer srv.Close()

	result, err := testClient(srv).Solve(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, result.FinalAnswer)
	// Partial output keeps the fields that did survive.
	assert.Equal(t, 40, result.Confidence)
	assert.Equal(t, "shrug", result.Data.Explanation)
}

func TestSolve_ConfidenceClamped(t *testing.T) {
	tests := []struct {
		name       string
		confidence string
		expected   int
	}{
		{name: "zero becomes fallback", confidence: "0", expected: FallbackConfidence},
		{name: "negative becomes fallback", confidence: "-5", expected: FallbackConfidence},
		{name: "above range clamps to 100", confidence: "150", expected: 100},
		{name: "in range kept", confidence: "88", expected: 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"steps": [], "explanation": "", "finalAnswer": "42", "confidence": ` + tt.confidence + `}`
			srv := fakeCompletionServer(t, http.StatusOK, body)
			defer srv.Close()

			result, err := testClient(srv).Solve(context.Background(), validRequest())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Confidence)
		})
	}
}

func TestSolve_TransportFailureIsSolverUnavailable(t *testing.T) {
	srv := fakeCompletionServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	_, err := testClient(srv).Solve(context.Background(), validRequest())

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected an AppError, got %T", err)
	assert.Equal(t, errors.ErrCodeSolverUnavailable, appErr.Code)
	assert.Equal(t, 502, appErr.Status)
}

func TestSolve_TimeoutIsSolverUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL + "/v1",
		Model:     "gpt-5",
		MaxTokens: 1500,
		Timeout:   20 * time.Millisecond,
	})

	_, err := client.Solve(context.Background(), validRequest())

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSolverUnavailable, appErr.Code)
}
