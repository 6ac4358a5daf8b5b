package models

import "time"

// ProblemAttempt is one entry of the append-only attempt log. Records are
// never mutated after creation.
type ProblemAttempt struct {
	ID          string    `json:"id"`
	ProblemID   string    `json:"problemId"`
	UserAnswer  string    `json:"userAnswer,omitempty"`
	IsCorrect   bool      `json:"isCorrect"`
	HintsUsed   int       `json:"hintsUsed"`
	TimeSpent   int       `json:"timeSpent"` // seconds
	AttemptedAt time.Time `json:"attemptedAt"`
}

// InsertProblemAttempt is the payload for recording an attempt.
type InsertProblemAttempt struct {
	ProblemID  string `json:"problemId"`
	UserAnswer string `json:"userAnswer,omitempty"`
	IsCorrect  bool   `json:"isCorrect"`
	HintsUsed  int    `json:"hintsUsed"`
	TimeSpent  int    `json:"timeSpent"`
}
