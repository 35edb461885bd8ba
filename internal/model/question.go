package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	FillBlank      QuestionType = "fill_blank"
	Essay          QuestionType = "essay"
)

// swagger:model Question
type Question struct {
	UUIDBase
	LessonID      string       `gorm:"index;type:varchar(36);not null" json:"lessonId"`
	QuestionText  string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType  QuestionType `gorm:"size:20;default:'multiple_choice'" json:"questionType"`
	Options       []string     `gorm:"serializer:json" json:"options"`
	CorrectAnswer string       `gorm:"size:255;not null" json:"correctAnswer"`
	Explanation   string       `gorm:"type:text" json:"explanation"`
	Points        int          `gorm:"default:10" json:"points"`
}

func (Question) TableName() string {
	return "questions"
}
