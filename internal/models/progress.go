package models

import "time"

// UserProgress is the cumulative per-category ledger record. Exactly one
// record exists per category, upserted on every recorded attempt. The
// process has a single shared ledger; there is no per-user dimension.
type UserProgress struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	ProblemsSolved int       `json:"problemsSolved"`
	CorrectAnswers int       `json:"correctAnswers"`
	AverageTime    int       `json:"averageTime,omitempty"` // seconds
	CurrentStreak  int       `json:"currentStreak"`
	BestStreak     int       `json:"bestStreak"`
	LastStudied    time.Time `json:"lastStudied"`
	SkillLevel     int       `json:"skillLevel"` // 1-10
}

// ProgressWithAccuracy decorates a ledger record with the accuracy ratio
// computed on read. Accuracy is never stored; the counters stay the
// single source of truth.
type ProgressWithAccuracy struct {
	UserProgress
	Accuracy float64 `json:"accuracy"`
}
