package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rafael/mathsolver/internal/api"
	"github.com/rafael/mathsolver/internal/models"
	"github.com/rafael/mathsolver/internal/repository/memory"
	"github.com/rafael/mathsolver/internal/services"
	"github.com/rafael/mathsolver/internal/solver"
	"github.com/rafael/mathsolver/internal/testutil/mocks"
)

// newTestServer wires a full router over the in-memory store with a
// mocked reasoning-model client.
func newTestServer(t *testing.T) (http.Handler, *mocks.MockSolverClient) {
	t.Helper()

	repos := memory.New().Repositories()
	client := new(mocks.MockSolverClient)

	srv := &api.Server{
		ProblemService:  services.NewProblemService(repos.Problems, repos.Solutions),
		SolveService:    services.NewSolveService(client, repos.Solutions),
		ProgressService: services.NewProgressService(repos.Problems, repos.Progress, repos.Attempts),
		SessionService:  services.NewSessionService(repos.Sessions),
	}
	return srv.Routes(), client
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dest))
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	decodeBody(t, rec, &envelope)
	require.NotEmpty(t, envelope.Error.Code, "expected an error envelope")
	return envelope.Error.Code
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCreateAndListProblems(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems", models.InsertProblem{
		ProblemText: "2x + 5 = 15",
		Category:    "algebra",
		Difficulty:  2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created models.Problem
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "algebra", created.Category)

	rec = doJSON(t, handler, http.MethodGet, "/api/problems", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var problems []models.Problem
	decodeBody(t, rec, &problems)
	require.Len(t, problems, 1)
	assert.Equal(t, created.ID, problems[0].ID)
}

func TestCreateProblemValidation(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems", models.InsertProblem{
		ProblemText: "x",
		Category:    "astrology",
		Difficulty:  1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestCreateProblemMalformedBody(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/problems", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", errorCode(t, rec))
}

func TestSolveProblemEndToEnd(t *testing.T) {
	handler, client := newTestServer(t)

	client.On("Solve", mock.Anything, mock.Anything).Return(&solver.Result{
		Data: models.SolutionData{
			Steps:       []models.SolutionStep{{Step: 1, Description: "subtract 5 from both sides", Result: "2x = 10"}},
			Explanation: "isolate x then divide",
			Concepts:    []string{"linear equations"},
		},
		FinalAnswer: "x = 5",
		Confidence:  92,
		TimeToSolve: 1400,
	}, nil)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems/solve", models.SolveRequest{
		ProblemText: "2x + 5 = 15",
		Category:    "algebra",
		Difficulty:  2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result services.SolveResult
	decodeBody(t, rec, &result)
	require.NotNil(t, result.Problem)
	require.NotNil(t, result.Solution)
	assert.Equal(t, result.Problem.ID, result.Solution.ProblemID)
	assert.Equal(t, "x = 5", result.Solution.FinalAnswer)
	assert.Equal(t, "AI-powered solution", result.Solution.Method)

	// The stored solution is retrievable afterwards.
	rec = doJSON(t, handler, http.MethodGet, "/api/problems/"+result.Problem.ID+"/solution", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var solution models.Solution
	decodeBody(t, rec, &solution)
	assert.Equal(t, "x = 5", solution.FinalAnswer)
	assert.Equal(t, 92, solution.Confidence)
}

func TestSolveProblemValidationSkipsSolver(t *testing.T) {
	handler, client := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems/solve", models.SolveRequest{
		Category:   "algebra",
		Difficulty: 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	client.AssertNotCalled(t, "Solve", mock.Anything, mock.Anything)
}

func TestGetSolutionNotFound(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/problems/no-such-id/solution", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestFavoriteFlow(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems", models.InsertProblem{
		ProblemText: "x", Category: "geometry", Difficulty: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.Problem
	decodeBody(t, rec, &created)

	rec = doJSON(t, handler, http.MethodPatch, "/api/problems/"+created.ID+"/favorite",
		map[string]bool{"isFavorite": true})
	require.Equal(t, http.StatusOK, rec.Code)

	var ok map[string]bool
	decodeBody(t, rec, &ok)
	assert.True(t, ok["success"])

	rec = doJSON(t, handler, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var favorites []models.Problem
	decodeBody(t, rec, &favorites)
	require.Len(t, favorites, 1)
	assert.Equal(t, created.ID, favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)
}

func TestFavoriteUnknownProblem(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPatch, "/api/problems/missing/favorite",
		map[string]bool{"isFavorite": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestAttemptAndProgressFlow(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems", models.InsertProblem{
		ProblemText: "3 + 4", Category: "algebra", Difficulty: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.Problem
	decodeBody(t, rec, &created)

	for _, attempt := range []models.InsertProblemAttempt{
		{UserAnswer: "7", IsCorrect: true, TimeSpent: 10},
		{UserAnswer: "8", IsCorrect: false, TimeSpent: 6},
	} {
		rec = doJSON(t, handler, http.MethodPost, "/api/problems/"+created.ID+"/attempt", attempt)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/problems/"+created.ID+"/attempts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var attempts []models.ProblemAttempt
	decodeBody(t, rec, &attempts)
	require.Len(t, attempts, 2)
	assert.Equal(t, created.ID, attempts[0].ProblemID)

	rec = doJSON(t, handler, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.ProgressWithAccuracy
	decodeBody(t, rec, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "algebra", records[0].Category)
	assert.Equal(t, 2, records[0].ProblemsSolved)
	assert.Equal(t, 1, records[0].CorrectAnswers)
	assert.Equal(t, 0, records[0].CurrentStreak)
	assert.Equal(t, 1, records[0].BestStreak)
	assert.InDelta(t, 0.5, records[0].Accuracy, 1e-9)
}

func TestAttemptUnknownProblem(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/problems/missing/attempt",
		models.InsertProblemAttempt{UserAnswer: "1", IsCorrect: false})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))
}

func TestStudySessionFlow(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/study-session", models.InsertStudySession{
		SessionName:    "morning warmup",
		ProblemsSolved: 3,
		TotalTime:      25,
		Categories:     []string{"algebra", "geometry"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created models.StudySession
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.StartedAt.IsZero())

	rec = doJSON(t, handler, http.MethodGet, "/api/study-sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sessions []models.StudySession
	decodeBody(t, rec, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "morning warmup", sessions[0].SessionName)
}

func TestStudySessionValidation(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/study-session", models.InsertStudySession{
		ProblemsSolved: -1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
}

func TestEmptyCollectionsReturnArrays(t *testing.T) {
	handler, _ := newTestServer(t)

	paths := []string{"/api/problems", "/api/favorites", "/api/progress", "/api/study-sessions"}
	for _, path := range paths {
		rec := doJSON(t, handler, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]\n", rec.Body.String(), path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
