package solver

import (
	"context"
	"encoding/json"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rafael/mathsolver/internal/errors"
	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/models"
)

// FallbackAnswer and FallbackConfidence are substituted when the model
// returns output the gateway cannot trust.
const (
	FallbackAnswer     = "Unable to determine"
	FallbackConfidence = 75
)

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client calls an OpenAI-compatible chat-completion endpoint and turns
// its structured JSON output into a Result.
type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	log       *logger.Logger
}

func New(cfg Config) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &Client{
		api:       openai.NewClientWithConfig(apiCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   timeout,
		log:       logger.Default().WithPrefix("solver"),
	}
}

// solutionPayload mirrors the JSON shape requested in the prompt.
type solutionPayload struct {
	Steps       []models.SolutionStep `json:"steps"`
	Explanation string                `json:"explanation"`
	Concepts    []string              `json:"concepts"`
	FinalAnswer string                `json:"finalAnswer"`
	Confidence  int                   `json:"confidence"`
}

// Solve sends the request to the reasoning model and returns a
// well-formed Result. Transport, auth and timeout failures surface as
// SolverUnavailable errors; malformed model output never does, it is
// recovered with fallback fields at reduced confidence.
func (c *Client) Solve(ctx context.Context, req models.SolveRequest) (*Result, error) {
	log := logger.FromContext(ctx).WithPrefix("solver").WithField("category", req.Category)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	log.Debug("requesting solution: difficulty=%d, has_image=%t", req.Difficulty, req.ImageData != "")
	start := time.Now()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:               c.model,
		Messages:            buildMessages(req),
		MaxCompletionTokens: c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Error("chat completion failed after %v: %v", elapsed, err)
		return nil, errors.NewSolverUnavailableError(err)
	}

	log.Debug("chat completion received in %v", elapsed)

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	} else {
		log.Warn("completion returned no choices, falling back to defaults")
	}

	result := parseSolution(log, []byte(content))
	result.TimeToSolve = elapsed.Milliseconds()
	result.Model = resp.Model

	log.Info("solution ready: confidence=%d, steps=%d, time_to_solve_ms=%d",
		result.Confidence, len(result.Data.Steps), result.TimeToSolve)
	return result, nil
}

// parseSolution turns raw model output into a Result, substituting safe
// defaults for anything missing or out of range. It never fails.
func parseSolution(log *logger.Logger, raw []byte) *Result {
	if err := validateSolution(raw); err != nil {
		log.Warn("model output failed schema validation, repairing with defaults: %v", err)
	}

	var payload solutionPayload
	// Lenient decode: whatever fields survive are kept, the rest default.
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			log.Warn("model output is not valid JSON: %v", err)
			payload = solutionPayload{}
		}
	}

	if payload.Steps == nil {
		payload.Steps = []models.SolutionStep{}
	}
	if payload.Concepts == nil {
		payload.Concepts = []string{}
	}
	if payload.FinalAnswer == "" {
		payload.FinalAnswer = FallbackAnswer
	}
	if payload.Confidence <= 0 {
		payload.Confidence = FallbackConfidence
	} else if payload.Confidence > 100 {
		payload.Confidence = 100
	}

	return &Result{
		Data: models.SolutionData{
			Steps:       payload.Steps,
			Explanation: payload.Explanation,
			Concepts:    payload.Concepts,
		},
		FinalAnswer: payload.FinalAnswer,
		Confidence:  payload.Confidence,
	}
}
