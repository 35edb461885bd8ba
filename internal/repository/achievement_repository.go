package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) FindAll(db *gorm.DB) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := db.Order("xp_reward ASC").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindByID(id string) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.DB.Where("id = ?", id).First(&achievement).Error
	return &achievement, err
}
