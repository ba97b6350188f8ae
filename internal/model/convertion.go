package model

import "github.com/adventboard/backend/internal/entity"

func ConvertParticipant(p *entity.Participant) Participant {
	if p == nil {
		return Participant{}
	}

	return Participant{
		ID:          p.ID,
		UserID:      p.UserID,
		Email:       p.User.Email,
		JoinDate:    p.JoinDate,
		TotalPoints: p.TotalPoints,
	}
}

func ConvertCompetition(c *entity.Competition) Competition {
	if c == nil {
		return Competition{}
	}

	participants := []Participant{}
	for i := range c.Participants {
		participants = append(participants, ConvertParticipant(&c.Participants[i]))
	}

	return Competition{
		ID:           c.ID,
		Name:         c.Name,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		IsActive:     c.IsActive,
		Participants: participants,
	}
}

func ConvertCompletion(c *entity.Completion) Completion {
	if c == nil {
		return Completion{}
	}

	return Completion{
		ID:          c.ID,
		UserID:      c.UserID,
		UserEmail:   c.User.Email,
		DayNumber:   c.DailyChallenge.DayNumber,
		PartNumber:  c.PartNumber,
		Position:    c.Position,
		CompletedAt: c.CompletionTime,
	}
}
