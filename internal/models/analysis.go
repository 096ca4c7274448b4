package models

import (
	"time"
)

// PhotoSet holds object references for each body photo position.
type PhotoSet struct {
	Front string `json:"front,omitempty"`
	Back  string `json:"back,omitempty"`
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

func (p PhotoSet) Empty() bool {
	return p.Front == "" && p.Back == "" && p.Left == "" && p.Right == ""
}

type AnalysisResult struct {
	Proportions      string   `json:"proportions"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvementAreas"`
	Recommendations  []string `json:"recommendations"`
}

type BodyAnalysis struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Photos    PhotoSet       `json:"photos"`
	Analysis  AnalysisResult `json:"analysis"`
	CreatedAt time.Time      `json:"createdAt"`
}
