package service

import (
	"errors"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/util"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, lessonRepo *repository.LessonRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo, LessonRepo: lessonRepo}
}

type CourseRequest struct {
	Title             string                `json:"title" binding:"required"`
	Description       string                `json:"description"`
	Instructor        string                `json:"instructor"`
	Difficulty        model.DifficultyLevel `json:"difficulty"`
	EstimatedDuration int                   `json:"estimatedDuration"`
	ThumbnailURL      string                `json:"thumbnailUrl"`
	Tags              []string              `json:"tags"`
	XPReward          int                   `json:"xpReward"`
}

// CourseDetail bundles a course with its ordered lessons.
type CourseDetail struct {
	Course  *model.Course  `json:"course"`
	Lessons []model.Lesson `json:"lessons"`
}

// ListPublished returns the public course catalog.
func (s *CourseService) ListPublished() ([]model.Course, error) {
	return s.CourseRepo.FindPublished()
}

func (s *CourseService) ListAll() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) GetCourse(id string) (*CourseDetail, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lessons, err := s.LessonRepo.FindByCourse(id)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: course, Lessons: lessons}, nil
}

func (s *CourseService) CreateCourse(req CourseRequest) (*model.Course, error) {
	course := &model.Course{
		Title:             req.Title,
		Description:       req.Description,
		Instructor:        req.Instructor,
		Difficulty:        req.Difficulty,
		EstimatedDuration: req.EstimatedDuration,
		ThumbnailURL:      req.ThumbnailURL,
		Tags:              req.Tags,
		XPReward:          req.XPReward,
	}
	if course.Difficulty == "" {
		course.Difficulty = model.Beginner
	}
	if course.XPReward <= 0 {
		course.XPReward = 100
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(id string, req CourseRequest) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Instructor = req.Instructor
	if req.Difficulty != "" {
		course.Difficulty = req.Difficulty
	}
	course.EstimatedDuration = req.EstimatedDuration
	if req.ThumbnailURL != "" {
		course.ThumbnailURL = req.ThumbnailURL
	}
	course.Tags = req.Tags
	if req.XPReward > 0 {
		course.XPReward = req.XPReward
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(id string) error {
	if _, err := s.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.CourseRepo.Delete(id)
}

// PublishCourse flips a course's published flag.
func (s *CourseService) PublishCourse(id string, published bool) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	course.IsPublished = published
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}
