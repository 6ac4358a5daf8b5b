package models

import "time"

type Problem struct {
	ID                  string    `json:"id"`
	ProblemText         string    `json:"problemText"`
	Category            string    `json:"category"`
	Difficulty          int       `json:"difficulty"`
	ImageURL            string    `json:"imageUrl,omitempty"`
	LatexRepresentation string    `json:"latexRepresentation,omitempty"`
	IsFavorite          bool      `json:"isFavorite"`
	Tags                []string  `json:"tags,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ProblemFilter narrows problem listings. Zero values mean "no filter";
// results are always ordered by createdAt descending.
type ProblemFilter struct {
	Category      string
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// InsertProblem is the client-supplied payload for creating a problem.
// ID and CreatedAt are assigned by the storage layer.
type InsertProblem struct {
	ProblemText         string   `json:"problemText"`
	Category            string   `json:"category"`
	Difficulty          int      `json:"difficulty"`
	ImageURL            string   `json:"imageUrl,omitempty"`
	LatexRepresentation string   `json:"latexRepresentation,omitempty"`
	IsFavorite          bool     `json:"isFavorite"`
	Tags                []string `json:"tags,omitempty"`
}
