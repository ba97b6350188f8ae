package model

import (
	"fmt"
	"time"
)

type Competition struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	StartDate    time.Time     `json:"startDate"`
	EndDate      time.Time     `json:"endDate"`
	IsActive     bool          `json:"isActive"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"userId"`
	Email       string    `json:"email"`
	JoinDate    time.Time `json:"joinDate"`
	TotalPoints int       `json:"totalPoints"`
}

type CreateCompetitionRequest struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type CreateCompetitionResponse struct {
	Competition
}

func (r CreateCompetitionResponse) CreatedLocation() string {
	return fmt.Sprintf("/competitions/%d", r.ID)
}

type UpdateCompetitionRequest struct {
	ID        uint      `uri:"id" json:"-"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

type UpdateCompetitionResponse struct {
	Competition
}

type GetCompetitionsRequest struct{}

type GetCompetitionsResponse []Competition

type GetCompetitionRequest struct {
	ID uint `uri:"id" json:"-"`
}

type GetCompetitionResponse struct {
	Competition
}

type JoinCompetitionRequest struct {
	ID uint `uri:"id" json:"-"`
}

type JoinCompetitionResponse struct {
	Message string `json:"message"`
}

type GetParticipantsRequest struct {
	ID uint `uri:"id" json:"-"`
}

type GetParticipantsResponse []Participant
