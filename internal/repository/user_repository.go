package repository

import (
	"time"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	return &user, err
}

// FindByIDTx loads a user on the given handle, so reads inside a
// transaction see that transaction's writes.
func (r *UserRepository) FindByIDTx(db *gorm.DB, id string) (*model.User, error) {
	var user model.User
	err := db.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// AddXP increments the stored XP counter atomically in the database.
func (r *UserRepository) AddXP(db *gorm.DB, userID string, xp int) error {
	return db.Model(&model.User{}).
		Where("id = ?", userID).
		Update("total_xp", gorm.Expr("total_xp + ?", xp)).
		Error
}

func (r *UserRepository) FindTopByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("is_active = ?", true).
		Order("total_xp DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastLogin(userID string) error {
	now := time.Now()
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", now).
		Error
}
