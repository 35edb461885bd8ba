package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

func (r *QuizAttemptRepository) Create(db *gorm.DB, attempt *model.QuizAttempt) error {
	return db.Create(attempt).Error
}

// FindByUserAndLesson returns the user's attempts for a lesson, newest first.
func (r *QuizAttemptRepository) FindByUserAndLesson(userID, lessonID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}
