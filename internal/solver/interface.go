package solver

import (
	"context"

	"github.com/rafael/mathsolver/internal/models"
)

// Result is the well-formed outcome of a solve call. The gateway always
// returns a Result on a successful transport round trip, falling back to
// low-confidence defaults when the model output is malformed.
type Result struct {
	Data        models.SolutionData
	FinalAnswer string
	Confidence  int
	TimeToSolve int64 // wall-clock milliseconds
	Model       string
}

// ClientInterface defines the interface for reasoning-model operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	Solve(ctx context.Context, req models.SolveRequest) (*Result, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
