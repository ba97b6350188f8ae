package entity

import "time"

const (
	MinDayNumber = 1
	MaxDayNumber = 25
)

type Competition struct {
	Base
	Name      string `gorm:"size:255;not null"`
	StartDate time.Time
	EndDate   time.Time
	IsActive  bool `gorm:"not null"`

	Participants []Participant `gorm:"foreignKey:CompetitionID"`
}

type Participant struct {
	Base

	UserID uint `gorm:"not null;uniqueIndex:idx_participants_user_competition,priority:1"`
	User   User `gorm:"foreignKey:UserID"`

	CompetitionID uint `gorm:"not null;uniqueIndex:idx_participants_user_competition,priority:2"`

	JoinDate    time.Time
	TotalPoints int `gorm:"not null;default:0"`
}
