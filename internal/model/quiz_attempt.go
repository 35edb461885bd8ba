package model

// QuizAttempt is an immutable record of one grading event. Attempts are
// created once per submission and never updated.
// swagger:model QuizAttempt
type QuizAttempt struct {
	UUIDBase
	UserID       string            `gorm:"index;type:varchar(36);not null" json:"userId"`
	LessonID     string            `gorm:"index;type:varchar(36);not null" json:"lessonId"`
	Answers      map[string]string `gorm:"serializer:json" json:"answers"`
	Score        float64           `gorm:"default:0" json:"score"` // 0-100
	ScoredPoints int               `gorm:"default:0" json:"scoredPoints"`
	TotalPoints  int               `gorm:"default:0" json:"totalPoints"`
	Passed       bool              `gorm:"default:false" json:"passed"`
	XPEarned     int               `gorm:"default:0" json:"xpEarned"`
	TimeTaken    int               `gorm:"default:0" json:"timeTaken"` // seconds
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
