package model

type LessonType string

const (
	LessonVideo       LessonType = "video"
	LessonText        LessonType = "text"
	LessonInteractive LessonType = "interactive"
	LessonQuiz        LessonType = "quiz"
	LessonAssessment  LessonType = "assessment"
)

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	CourseID    string     `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Content     string     `gorm:"type:text" json:"content"`
	LessonType  LessonType `gorm:"size:20;default:'text'" json:"lessonType"`
	OrderIndex  int        `gorm:"default:0" json:"orderIndex"`
	VideoURL    string     `gorm:"size:255" json:"videoUrl"`
	Duration    int        `gorm:"default:0" json:"duration"` // seconds
	XPReward    int        `gorm:"default:10" json:"xpReward"`
}

func (Lesson) TableName() string {
	return "lessons"
}
