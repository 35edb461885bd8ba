package model

import "time"

// UserProgress tracks one user's progress through one course. There is at
// most one row per (user, course) pair, created at enrollment.
// swagger:model UserProgress
type UserProgress struct {
	UUIDBase
	UserID             string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_course" json:"userId"`
	CourseID           string     `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_course" json:"courseId"`
	ProgressPercentage float64    `gorm:"default:0" json:"progressPercentage"`
	CompletedLessons   []string   `gorm:"serializer:json" json:"completedLessons"`
	CurrentLessonID    string     `gorm:"type:varchar(36)" json:"currentLessonId"`
	StartedAt          time.Time  `json:"startedAt"`
	LastAccessed       time.Time  `json:"lastAccessed"`
	CompletedAt        *time.Time `json:"completedAt"`
	TimeSpent          int        `gorm:"default:0" json:"timeSpent"` // seconds, additive
}

func (UserProgress) TableName() string {
	return "user_progress"
}
