package entity

import "time"

type DailyChallenge struct {
	Base

	CompetitionID uint        `gorm:"not null;uniqueIndex:idx_daily_challenges_competition_day,priority:1"`
	Competition   Competition `gorm:"foreignKey:CompetitionID"`

	DayNumber int `gorm:"not null;uniqueIndex:idx_daily_challenges_competition_day,priority:2"`
}

// Completion is written once and never updated. The two unique indexes guarantee that a user
// completes a part at most once and that no two completions of the same part share a position.
type Completion struct {
	Base

	DailyChallengeID uint           `gorm:"not null;uniqueIndex:idx_completions_user_part,priority:1;uniqueIndex:idx_completions_part_position,priority:1"`
	DailyChallenge   DailyChallenge `gorm:"foreignKey:DailyChallengeID"`

	UserID uint `gorm:"not null;uniqueIndex:idx_completions_user_part,priority:2"`
	User   User `gorm:"foreignKey:UserID"`

	PartNumber     int `gorm:"not null;uniqueIndex:idx_completions_user_part,priority:3;uniqueIndex:idx_completions_part_position,priority:2"`
	Position       int `gorm:"not null;uniqueIndex:idx_completions_part_position,priority:3"`
	CompletionTime time.Time
}
