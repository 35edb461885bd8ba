package service

import (
	"errors"

	"gorm.io/gorm"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/repository"
	"balanceed_backend/internal/util"
)

type LessonService struct {
	LessonRepo   *repository.LessonRepository
	CourseRepo   *repository.CourseRepository
	QuestionRepo *repository.QuestionRepository
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	questionRepo *repository.QuestionRepository,
) *LessonService {
	return &LessonService{
		LessonRepo:   lessonRepo,
		CourseRepo:   courseRepo,
		QuestionRepo: questionRepo,
	}
}

type LessonRequest struct {
	CourseID    string           `json:"courseId" binding:"required"`
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	LessonType  model.LessonType `json:"lessonType"`
	OrderIndex  int              `json:"orderIndex"`
	VideoURL    string           `json:"videoUrl"`
	Duration    int              `json:"duration"`
	XPReward    int              `json:"xpReward"`
}

type QuestionRequest struct {
	QuestionText  string             `json:"questionText" binding:"required"`
	QuestionType  model.QuestionType `json:"questionType"`
	Options       []string           `json:"options"`
	CorrectAnswer string             `json:"correctAnswer" binding:"required"`
	Explanation   string             `json:"explanation"`
	Points        int                `json:"points"`
}

// QuestionView is the student-facing shape of a question. The correct
// answer and explanation are stripped so quizzes cannot be solved by
// inspecting the payload.
type QuestionView struct {
	ID           string             `json:"id"`
	QuestionText string             `json:"questionText"`
	QuestionType model.QuestionType `json:"questionType"`
	Options      []string           `json:"options"`
	Points       int                `json:"points"`
}

// LessonDetail is a lesson plus its questions in student-safe form.
type LessonDetail struct {
	Lesson    *model.Lesson  `json:"lesson"`
	Questions []QuestionView `json:"questions"`
}

// ListByCourse returns a course's lessons in order.
func (s *LessonService) ListByCourse(courseID string) ([]model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.LessonRepo.FindByCourse(courseID)
}

func (s *LessonService) GetLesson(id string) (*LessonDetail, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.FindByLesson(id)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Options:      q.Options,
			Points:       q.Points,
		})
	}
	return &LessonDetail{Lesson: lesson, Questions: views}, nil
}

func (s *LessonService) CreateLesson(req LessonRequest) (*model.Lesson, error) {
	if _, err := s.CourseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	lesson := &model.Lesson{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		LessonType:  req.LessonType,
		OrderIndex:  req.OrderIndex,
		VideoURL:    req.VideoURL,
		Duration:    req.Duration,
		XPReward:    req.XPReward,
	}
	if lesson.LessonType == "" {
		lesson.LessonType = model.LessonText
	}
	if lesson.XPReward <= 0 {
		lesson.XPReward = 10
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) UpdateLesson(id string, req LessonRequest) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.Content = req.Content
	if req.LessonType != "" {
		lesson.LessonType = req.LessonType
	}
	lesson.OrderIndex = req.OrderIndex
	if req.VideoURL != "" {
		lesson.VideoURL = req.VideoURL
	}
	if req.Duration > 0 {
		lesson.Duration = req.Duration
	}
	if req.XPReward > 0 {
		lesson.XPReward = req.XPReward
	}

	if err := s.LessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) DeleteLesson(id string) error {
	if _, err := s.LessonRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}
	return s.LessonRepo.Delete(id)
}

func (s *LessonService) CreateQuestion(lessonID string, req QuestionRequest) (*model.Question, error) {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	question := &model.Question{
		LessonID:      lessonID,
		QuestionText:  req.QuestionText,
		QuestionType:  req.QuestionType,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Points:        req.Points,
	}
	if question.QuestionType == "" {
		question.QuestionType = model.MultipleChoice
	}
	if question.Points <= 0 {
		question.Points = 10
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *LessonService) UpdateQuestion(id string, req QuestionRequest) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	question.QuestionText = req.QuestionText
	if req.QuestionType != "" {
		question.QuestionType = req.QuestionType
	}
	question.Options = req.Options
	question.CorrectAnswer = req.CorrectAnswer
	question.Explanation = req.Explanation
	if req.Points > 0 {
		question.Points = req.Points
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *LessonService) DeleteQuestion(id string) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.QuestionRepo.Delete(id)
}
