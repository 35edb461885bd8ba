package service

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/util"
	"balanceed_backend/pkg/monitoring"
)

type QuizService struct {
	DB           *gorm.DB
	LessonRepo   *repository.LessonRepository
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.QuizAttemptRepository
	UserRepo     *repository.UserRepository
	Gamification *GamificationService
}

func NewQuizService(
	db *gorm.DB,
	lessonRepo *repository.LessonRepository,
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.QuizAttemptRepository,
	userRepo *repository.UserRepository,
	gamification *GamificationService,
) *QuizService {
	return &QuizService{
		DB:           db,
		LessonRepo:   lessonRepo,
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		UserRepo:     userRepo,
		Gamification: gamification,
	}
}

type QuizSubmission struct {
	LessonID  string            `json:"lessonId" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
	TimeTaken int               `json:"timeTaken"`
}

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
	PointsEarned  int    `json:"pointsEarned"`
}

type QuizResult struct {
	AttemptID    string              `json:"attemptId"`
	Score        float64             `json:"score"`
	ScoredPoints int                 `json:"scoredPoints"`
	TotalPoints  int                 `json:"totalPoints"`
	Passed       bool                `json:"passed"`
	XPEarned     int                 `json:"xpEarned"`
	Questions    []QuestionResult    `json:"questions"`
	Achievements []model.Achievement `json:"achievements,omitempty"`
}

// normalizeAnswer makes grading case and whitespace insensitive.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SubmitQuiz grades a submission against the lesson's questions, records an
// immutable attempt and, when the raw percentage reaches the pass threshold,
// grants the scored points as XP. A submission against a lesson with no
// questions is rejected before anything is written. Passing a quiz does not
// advance the streak; only lesson completion does.
func (s *QuizService) SubmitQuiz(userID string, sub QuizSubmission) (*QuizResult, error) {
	if _, err := s.LessonRepo.FindByID(sub.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.FindByLesson(sub.LessonID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrNoQuestions
	}

	var scored, total int
	results := make([]QuestionResult, 0, len(questions))
	for _, q := range questions {
		total += q.Points
		correct := normalizeAnswer(sub.Answers[q.ID]) == normalizeAnswer(q.CorrectAnswer)
		earned := 0
		if correct {
			earned = q.Points
			scored += earned
		}
		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			Correct:       correct,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			PointsEarned:  earned,
		})
	}

	if total == 0 {
		return nil, util.ErrNoQuestions
	}

	// Pass or fail is decided on the raw percentage; the rounded score is
	// only for display.
	rawScore := float64(scored) / float64(total) * 100
	passed := rawScore >= PassThreshold
	score := math.Round(rawScore*10) / 10

	xpEarned := 0
	if passed {
		xpEarned = scored
	}

	attempt := &model.QuizAttempt{
		UserID:       userID,
		LessonID:     sub.LessonID,
		Answers:      sub.Answers,
		Score:        score,
		ScoredPoints: scored,
		TotalPoints:  total,
		Passed:       passed,
		XPEarned:     xpEarned,
		TimeTaken:    sub.TimeTaken,
	}

	var awarded []model.Achievement
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.AttemptRepo.Create(tx, attempt); err != nil {
			return err
		}
		if xpEarned > 0 {
			user, err := s.UserRepo.FindByIDTx(tx, userID)
			if err != nil {
				return err
			}
			awarded, err = s.Gamification.GrantXP(tx, user, xpEarned, time.Now())
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.QuizAttempts.WithLabelValues(strconv.FormatBool(passed)).Inc()

	return &QuizResult{
		AttemptID:    attempt.ID,
		Score:        score,
		ScoredPoints: scored,
		TotalPoints:  total,
		Passed:       passed,
		XPEarned:     xpEarned,
		Questions:    results,
		Achievements: awarded,
	}, nil
}

// GetAttempts lists the user's past attempts for a lesson, newest first.
func (s *QuizService) GetAttempts(userID, lessonID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.FindByUserAndLesson(userID, lessonID)
}
