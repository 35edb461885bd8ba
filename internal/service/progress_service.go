package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/util"
	"balanceed_backend/pkg/monitoring"
)

type ProgressService struct {
	DB           *gorm.DB
	ProgressRepo *repository.ProgressRepository
	CourseRepo   *repository.CourseRepository
	LessonRepo   *repository.LessonRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
}

func NewProgressService(
	db *gorm.DB,
	progressRepo *repository.ProgressRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
) *ProgressService {
	return &ProgressService{
		DB:           db,
		ProgressRepo: progressRepo,
		CourseRepo:   courseRepo,
		LessonRepo:   lessonRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
	}
}

type ProgressUpdate struct {
	LessonID           string  `json:"lessonId" binding:"required"`
	ProgressPercentage float64 `json:"progressPercentage"`
	TimeSpent          int     `json:"timeSpent"`
}

type ProgressResult struct {
	Progress        *model.UserProgress `json:"progress"`
	LessonCompleted bool                `json:"lessonCompleted"`
	CourseCompleted bool                `json:"courseCompleted"`
	XPEarned        int                 `json:"xpEarned"`
	CurrentStreak   int                 `json:"currentStreak"`
	Achievements    []model.Achievement `json:"achievements,omitempty"`
}

// Enroll creates the progress row for a course and bumps its enrollment
// counter. Enrolling twice in the same course is rejected.
func (s *ProgressService) Enroll(userID, courseID string) (*model.UserProgress, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if !course.IsPublished {
		return nil, util.ErrCourseNotFound
	}

	if _, err := s.ProgressRepo.FindByUserAndCourse(s.DB, userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	progress := &model.UserProgress{
		UserID:           userID,
		CourseID:         courseID,
		CompletedLessons: []string{},
		StartedAt:        now,
		LastAccessed:     now,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ProgressRepo.Create(tx, progress); err != nil {
			return err
		}
		return s.CourseRepo.IncrementEnrollment(tx, courseID)
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// UpdateProgress records activity on a lesson. The course is derived from
// the lesson. Every call adds the lesson to the completed set (a no-op when
// already present), refreshes the course percentage and last-accessed time
// and accumulates time spent. A report of 100% is a qualifying activity: it
// grants the lesson's XP and advances the daily streak, and finishing the
// last lesson also completes the course and grants the course's XP reward.
func (s *ProgressService) UpdateProgress(userID string, req ProgressUpdate) (*ProgressResult, error) {
	lesson, err := s.LessonRepo.FindByID(req.LessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	now := time.Now()
	result := &ProgressResult{}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.FindByUserAndCourse(tx, userID, lesson.CourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrNotEnrolled
			}
			return err
		}

		progress.LastAccessed = now
		progress.CurrentLessonID = req.LessonID
		if req.TimeSpent > 0 {
			progress.TimeSpent += req.TimeSpent
		}

		if !containsString(progress.CompletedLessons, req.LessonID) {
			progress.CompletedLessons = append(progress.CompletedLessons, req.LessonID)

			totalLessons, err := s.LessonRepo.CountByCourse(tx, lesson.CourseID)
			if err != nil {
				return err
			}
			if totalLessons > 0 {
				progress.ProgressPercentage = float64(len(progress.CompletedLessons)) / float64(totalLessons) * 100
			}
		}

		if req.ProgressPercentage < 100 {
			result.Progress = progress
			return s.ProgressRepo.Save(tx, progress)
		}

		user, err := s.UserRepo.FindByIDTx(tx, userID)
		if err != nil {
			return err
		}

		// Lesson completion is the streak trigger; streak achievements must
		// see the new state before XP is granted.
		streak := AdvanceStreak(StreakState{
			Current:      user.CurrentStreak,
			Longest:      user.LongestStreak,
			LastActivity: user.LastActivityDate,
		}, now)
		user.CurrentStreak = streak.Current
		user.LongestStreak = streak.Longest
		user.LastActivityDate = streak.LastActivity

		result.LessonCompleted = true
		result.XPEarned = lesson.XPReward
		monitoring.LessonCompletions.Inc()

		if progress.ProgressPercentage >= 100 && progress.CompletedAt == nil {
			course, err := s.CourseRepo.FindByIDTx(tx, lesson.CourseID)
			if err != nil {
				return err
			}
			progress.CompletedAt = &now
			user.CompletedCourses = append(user.CompletedCourses, lesson.CourseID)
			result.CourseCompleted = true
			result.XPEarned += course.XPReward
		}

		// Struct-based update so the json serializer runs on the
		// completed-courses column.
		if err := tx.Model(user).
			Select("current_streak", "longest_streak", "last_activity_date", "completed_courses").
			Updates(user).Error; err != nil {
			return err
		}

		awarded, err := s.Gamification.GrantXP(tx, user, result.XPEarned, now)
		if err != nil {
			return err
		}
		result.Achievements = awarded
		result.CurrentStreak = user.CurrentStreak
		result.Progress = progress

		return s.ProgressRepo.Save(tx, progress)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetProgress lists all of the user's course progress rows.
func (s *ProgressService) GetProgress(userID string) ([]model.UserProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}

// GetCourseProgress returns the user's progress in one course.
func (s *ProgressService) GetCourseProgress(userID, courseID string) (*model.UserProgress, error) {
	progress, err := s.ProgressRepo.FindByUserAndCourse(s.DB, userID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}
	return progress, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
