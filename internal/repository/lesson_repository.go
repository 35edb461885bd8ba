package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ?", id).First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) FindByCourse(courseID string) ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.Where("course_id = ?", courseID).
		Order("order_index ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) CountByCourse(db *gorm.DB, courseID string) (int64, error) {
	var count int64
	err := db.Model(&model.Lesson{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Lesson{}).Error
}
