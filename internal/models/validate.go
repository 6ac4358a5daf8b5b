package models

import "github.com/rafael/mathsolver/internal/errors"

// SolveRequest is the inbound payload for a problem-solve call.
// ImageData carries raw base64 image bytes without a data-URI prefix.
type SolveRequest struct {
	ProblemText string `json:"problemText"`
	Category    string `json:"category"`
	Difficulty  int    `json:"difficulty"`
	ImageData   string `json:"imageData,omitempty"`
}

// Validate checks a solve request before any external call is made.
func (r SolveRequest) Validate() error {
	if !ValidCategory(r.Category) {
		return errors.NewValidationError("category", "must be one of the known math categories")
	}
	if r.Difficulty < 1 || r.Difficulty > 5 {
		return errors.NewValidationError("difficulty", "must be between 1 and 5")
	}
	if r.ProblemText == "" && r.ImageData == "" {
		return errors.NewValidationError("problemText", "either problemText or imageData is required")
	}
	return nil
}

// Validate checks a problem-creation payload.
func (p InsertProblem) Validate() error {
	if p.ProblemText == "" {
		return errors.NewValidationError("problemText", "cannot be empty")
	}
	if !ValidCategory(p.Category) {
		return errors.NewValidationError("category", "must be one of the known math categories")
	}
	if p.Difficulty < 1 || p.Difficulty > 5 {
		return errors.NewValidationError("difficulty", "must be between 1 and 5")
	}
	return nil
}

// Validate checks a study-session payload. Counters only grow, so they
// must start non-negative.
func (s InsertStudySession) Validate() error {
	if s.ProblemsSolved < 0 {
		return errors.NewValidationError("problemsSolved", "cannot be negative")
	}
	if s.TotalTime < 0 {
		return errors.NewValidationError("totalTime", "cannot be negative")
	}
	for _, c := range s.Categories {
		if !ValidCategory(c) {
			return errors.NewValidationError("categories", "unknown category: "+c)
		}
	}
	return nil
}

// Validate checks an attempt payload.
func (a InsertProblemAttempt) Validate() error {
	if a.ProblemID == "" {
		return errors.NewValidationError("problemId", "cannot be empty")
	}
	if a.HintsUsed < 0 {
		return errors.NewValidationError("hintsUsed", "cannot be negative")
	}
	if a.TimeSpent < 0 {
		return errors.NewValidationError("timeSpent", "cannot be negative")
	}
	return nil
}
