package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type LessonController struct {
	LessonService *service.LessonService
}

func NewLessonController(lessonService *service.LessonService) *LessonController {
	return &LessonController{LessonService: lessonService}
}

// @Summary Get a lesson with its questions
// @Description Questions are returned without correct answers
// @Tags lessons
// @Produce json
// @Param id path string true "lesson id"
// @Success 200 {object} util.Response{data=service.LessonDetail}
// @Failure 404 {object} util.Response
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	detail, err := c.LessonService.GetLesson(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to load lesson")
		return
	}
	util.Success(ctx, detail)
}

// @Summary Create a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.LessonRequest true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.CreateLesson(req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to create lesson")
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Update a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "lesson id"
// @Param body body service.LessonRequest true "lesson"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Failure 404 {object} util.Response
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	var req service.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.LessonService.UpdateLesson(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to update lesson")
		return
	}
	util.Success(ctx, lesson)
}

// @Summary Delete a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "lesson id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	if err := c.LessonService.DeleteLesson(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to delete lesson")
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a question to a lesson
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "lesson id"
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /lessons/{id}/questions [post]
func (c *LessonController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.LessonService.CreateQuestion(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to create question")
		return
	}
	util.Created(ctx, question)
}

// @Summary Update a question
// @Tags lessons
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "question id"
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /questions/{id} [put]
func (c *LessonController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.LessonService.UpdateQuestion(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to update question")
		return
	}
	util.Success(ctx, question)
}

// @Summary Delete a question
// @Tags lessons
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *LessonController) DeleteQuestion(ctx *gin.Context) {
	if err := c.LessonService.DeleteQuestion(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to delete question")
		return
	}
	util.Success(ctx, nil)
}
