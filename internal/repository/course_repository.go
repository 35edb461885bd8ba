package repository

import (
	"gorm.io/gorm"

	"balanceed_backend/internal/model"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.Where("id = ?", id).First(&course).Error
	return &course, err
}

// FindByIDTx loads a course on the given handle for use inside a
// transaction.
func (r *CourseRepository) FindByIDTx(db *gorm.DB, id string) (*model.Course, error) {
	var course model.Course
	err := db.Where("id = ?", id).First(&course).Error
	return &course, err
}

func (r *CourseRepository) FindPublished() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Course{}).Error
}

// IncrementEnrollment bumps the enrollment counter atomically.
func (r *CourseRepository) IncrementEnrollment(db *gorm.DB, courseID string) error {
	return db.Model(&model.Course{}).
		Where("id = ?", courseID).
		Update("enrollment_count", gorm.Expr("enrollment_count + ?", 1)).
		Error
}
