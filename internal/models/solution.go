package models

import "time"

// SolutionStep is one step of a structured solution. The slice order is
// the authoritative step order; the Step number is informational.
type SolutionStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
	Formula     string `json:"formula,omitempty"`
	Result      string `json:"result,omitempty"`
}

// SolutionData is the structured body of a solution as returned by the
// reasoning model. This field set and nesting is the wire contract with
// both the model and every downstream consumer; do not rename fields.
type SolutionData struct {
	Steps       []SolutionStep `json:"steps"`
	Explanation string         `json:"explanation"`
	Concepts    []string       `json:"concepts,omitempty"`
}

type Visualization struct {
	Type string `json:"type,omitempty"`
	Data any    `json:"data,omitempty"`
}

type Solution struct {
	ID            string         `json:"id"`
	ProblemID     string         `json:"problemId"`
	Solution      SolutionData   `json:"solution"`
	FinalAnswer   string         `json:"finalAnswer"`
	Confidence    int            `json:"confidence"`
	TimeToSolve   int64          `json:"timeToSolve,omitempty"`
	Method        string         `json:"method,omitempty"`
	Visualization *Visualization `json:"visualization,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// InsertSolution is the payload for persisting a solution.
type InsertSolution struct {
	ProblemID     string         `json:"problemId"`
	Solution      SolutionData   `json:"solution"`
	FinalAnswer   string         `json:"finalAnswer"`
	Confidence    int            `json:"confidence"`
	TimeToSolve   int64          `json:"timeToSolve,omitempty"`
	Method        string         `json:"method,omitempty"`
	Visualization *Visualization `json:"visualization,omitempty"`
}
