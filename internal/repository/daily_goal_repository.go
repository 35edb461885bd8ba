package repository

import (
	"time"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type DailyGoalRepository struct {
	DB *gorm.DB
}

func NewDailyGoalRepository(db *gorm.DB) *DailyGoalRepository {
	return &DailyGoalRepository{DB: db}
}

// FindByUserAndDate looks up the goal row for the calendar day containing t.
func (r *DailyGoalRepository) FindByUserAndDate(db *gorm.DB, userID string, t time.Time) (*model.DailyGoal, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	var goal model.DailyGoal
	err := db.Where("user_id = ? AND date = ?", userID, day).
		First(&goal).Error
	return &goal, err
}

func (r *DailyGoalRepository) Create(db *gorm.DB, goal *model.DailyGoal) error {
	return db.Create(goal).Error
}

func (r *DailyGoalRepository) Save(db *gorm.DB, goal *model.DailyGoal) error {
	return db.Save(goal).Error
}
