package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(db *gorm.DB, progress *model.UserProgress) error {
	return db.Create(progress).Error
}

func (r *ProgressRepository) FindByUserAndCourse(db *gorm.DB, userID, courseID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress).Error
	return &progress, err
}

func (r *ProgressRepository) FindByUser(userID string) ([]model.UserProgress, error) {
	var progress []model.UserProgress
	err := r.DB.Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) Save(db *gorm.DB, progress *model.UserProgress) error {
	return db.Save(progress).Error
}
