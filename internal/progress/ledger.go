package progress

import (
	"time"

	"github.com/rafael/mathsolver/internal/models"
)

// NewRecord returns a fresh ledger record for a category that has no
// progress yet. Skill level starts at 1; its update rule is a tunable
// applied elsewhere.
func NewRecord(category string) models.UserProgress {
	return models.UserProgress{
		Category:       category,
		ProblemsSolved: 0,
		CorrectAnswers: 0,
		CurrentStreak:  0,
		BestStreak:     0,
		SkillLevel:     1,
	}
}

// ApplyAttempt folds one recorded attempt into a category's ledger record.
// timeSpent is the attempt duration in seconds and feeds the running
// average; pass 0 to leave the average untouched.
func ApplyAttempt(p models.UserProgress, isCorrect bool, timeSpent int, now time.Time) models.UserProgress {
	p.ProblemsSolved++
	if isCorrect {
		p.CorrectAnswers++
		p.CurrentStreak++
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
	} else {
		p.CurrentStreak = 0
	}
	if timeSpent > 0 {
		if p.AverageTime == 0 {
			p.AverageTime = timeSpent
		} else {
			// Running mean over all solved problems, rounded down.
			p.AverageTime = (p.AverageTime*(p.ProblemsSolved-1) + timeSpent) / p.ProblemsSolved
		}
	}
	p.LastStudied = now
	return p
}

// Accuracy computes the correct-answer ratio for display. It is derived
// on read so the stored counters remain the single source of truth.
func Accuracy(p models.UserProgress) float64 {
	solved := p.ProblemsSolved
	if solved < 1 {
		solved = 1
	}
	return float64(p.CorrectAnswers) / float64(solved)
}
