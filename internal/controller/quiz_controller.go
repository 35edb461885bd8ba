package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary Submit a quiz
// @Description Grades the answers, records an attempt and grants XP on pass
// @Tags quiz
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.QuizSubmission true "submission"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 404 {object} util.Response
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req service.QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID, _ := util.GetUserID(ctx)
	result, err := c.QuizService.SubmitQuiz(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound), errors.Is(err, util.ErrNoQuestions):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, "failed to grade quiz")
		}
		return
	}
	util.Success(ctx, result)
}

// @Summary List own attempts for a lesson
// @Tags quiz
// @Security ApiKeyAuth
// @Produce json
// @Param lessonId path string true "lesson id"
// @Success 200 {object} util.Response
// @Router /quiz/attempts/{lessonId} [get]
func (c *QuizController) GetAttempts(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	attempts, err := c.QuizService.GetAttempts(userID, ctx.Param("lessonId"))
	if err != nil {
		util.LogInternalError(ctx, err, "failed to load attempts")
		return
	}
	util.Success(ctx, attempts)
}
