package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Where("id = ?", id).First(&question).Error
	return &question, err
}

func (r *QuestionRepository) FindByLesson(lessonID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("lesson_id = ?", lessonID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Question{}).Error
}
