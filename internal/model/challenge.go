package model

import "time"

type Completion struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	UserEmail   string    `json:"userEmail"`
	DayNumber   int       `json:"dayNumber"`
	PartNumber  int       `json:"partNumber"`
	Position    int       `json:"position"`
	CompletedAt time.Time `json:"completedAt"`
}

type CompleteChallengeRequest struct {
	CompetitionID uint `uri:"id" json:"-"`
	DayNumber     int  `uri:"day" json:"-"`
	PartNumber    int  `json:"partNumber"`
}

type CompleteChallengeResponse struct {
	Position    int `json:"position"`
	Points      int `json:"points"`
	TotalPoints int `json:"totalPoints"`
}

type GetCompletionsRequest struct {
	ID uint `uri:"id" json:"-"`
}

type GetCompletionsResponse []Completion
