package model

import "time"

// DailyGoal accumulates XP earned within one calendar day against a target.
// swagger:model DailyGoal
type DailyGoal struct {
	UUIDBase
	UserID     string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_goal_date" json:"userId"`
	Date       time.Time `gorm:"not null;uniqueIndex:idx_user_goal_date" json:"date"`
	TargetXP   int       `gorm:"default:50" json:"targetXp"`
	AchievedXP int       `gorm:"default:0" json:"achievedXp"`
	Completed  bool      `gorm:"default:false" json:"completed"`
}

func (DailyGoal) TableName() string {
	return "daily_goals"
}
