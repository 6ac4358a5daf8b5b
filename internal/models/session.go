package models

import "time"

type StudySession struct {
	ID                string     `json:"id"`
	SessionName       string     `json:"sessionName,omitempty"`
	ProblemsSolved    int        `json:"problemsSolved"`
	TotalTime         int        `json:"totalTime"` // minutes
	AverageDifficulty int        `json:"averageDifficulty,omitempty"`
	Categories        []string   `json:"categories,omitempty"`
	StartedAt         time.Time  `json:"startedAt"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
}

// InsertStudySession is the payload for starting a study session.
type InsertStudySession struct {
	SessionName       string     `json:"sessionName,omitempty"`
	ProblemsSolved    int        `json:"problemsSolved"`
	TotalTime         int        `json:"totalTime"`
	AverageDifficulty int        `json:"averageDifficulty,omitempty"`
	Categories        []string   `json:"categories,omitempty"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
}
