package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/pkg/database"
	"balanceed_backend/pkg/logger"
)

type testEnv struct {
	db           *gorm.DB
	users        *repository.UserRepository
	courses      *repository.CourseRepository
	lessons      *repository.LessonRepository
	questions    *repository.QuestionRepository
	attempts     *repository.QuizAttemptRepository
	progressRepo *repository.ProgressRepository
	achievements *repository.AchievementRepository
	dailyGoals   *repository.DailyGoalRepository

	gamification *GamificationService
	quiz         *QuizService
	progress     *ProgressService
}

// newTestEnv builds the service stack on an in-memory SQLite database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: opens a fresh empty database, so
	// pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	env := &testEnv{
		db:           db,
		users:        repository.NewUserRepository(db),
		courses:      repository.NewCourseRepository(db),
		lessons:      repository.NewLessonRepository(db),
		questions:    repository.NewQuestionRepository(db),
		attempts:     repository.NewQuizAttemptRepository(db),
		progressRepo: repository.NewProgressRepository(db),
		achievements: repository.NewAchievementRepository(db),
		dailyGoals:   repository.NewDailyGoalRepository(db),
	}

	env.gamification = NewGamificationService(env.users, env.achievements, env.dailyGoals)
	env.quiz = NewQuizService(db, env.lessons, env.questions, env.attempts, env.users, env.gamification)
	env.progress = NewProgressService(db, env.progressRepo, env.courses, env.lessons, env.users, env.gamification)

	return env
}

func (e *testEnv) createUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{
		Email:            "learner@example.com",
		Username:         "learner",
		Password:         "hashed",
		Role:             model.Student,
		IsActive:         true,
		CompletedCourses: []string{},
		Achievements:     []string{},
	}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createCourse(t *testing.T, xpReward int) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:       "Intro to Go",
		Difficulty:  model.Beginner,
		IsPublished: true,
		XPReward:    xpReward,
	}
	require.NoError(t, e.courses.Create(course))
	return course
}

func (e *testEnv) createLesson(t *testing.T, courseID string, order, xpReward int) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{
		CourseID:   courseID,
		Title:      "Lesson",
		LessonType: model.LessonText,
		OrderIndex: order,
		XPReward:   xpReward,
	}
	require.NoError(t, e.lessons.Create(lesson))
	return lesson
}

func (e *testEnv) createQuestion(t *testing.T, lessonID, answer string, points int) *model.Question {
	t.Helper()
	question := &model.Question{
		LessonID:      lessonID,
		QuestionText:  "?",
		QuestionType:  model.MultipleChoice,
		CorrectAnswer: answer,
		Points:        points,
	}
	require.NoError(t, e.questions.Create(question))
	return question
}

func (e *testEnv) reloadUser(t *testing.T, id string) *model.User {
	t.Helper()
	user, err := e.users.FindByID(id)
	require.NoError(t, err)
	return user
}
