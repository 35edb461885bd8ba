package model

type DifficultyLevel string

const (
	Beginner     DifficultyLevel = "beginner"
	Intermediate DifficultyLevel = "intermediate"
	Advanced     DifficultyLevel = "advanced"
)

// swagger:model Course
type Course struct {
	UUIDBase
	Title             string          `gorm:"size:255;not null" json:"title"`
	Description       string          `gorm:"type:text" json:"description"`
	Instructor        string          `gorm:"size:100" json:"instructor"`
	Difficulty        DifficultyLevel `gorm:"size:20;default:'beginner'" json:"difficulty"`
	EstimatedDuration int             `gorm:"default:0" json:"estimatedDuration"` // minutes
	ThumbnailURL      string          `gorm:"size:255" json:"thumbnailUrl"`
	Tags              []string        `gorm:"serializer:json" json:"tags"`
	IsPublished       bool            `gorm:"default:false" json:"isPublished"`
	EnrollmentCount   int             `gorm:"default:0" json:"enrollmentCount"`
	Rating            float64         `gorm:"default:0" json:"rating"`
	XPReward          int             `gorm:"default:100" json:"xpReward"`
}

func (Course) TableName() string {
	return "courses"
}
