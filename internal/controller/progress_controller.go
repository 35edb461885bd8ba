package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Enroll in a course
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "course id"
// @Success 201 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /courses/{id}/enroll [post]
func (c *ProgressController) Enroll(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	progress, err := c.ProgressService.Enroll(userID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadyEnrolled):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, "failed to enroll")
		}
		return
	}
	util.Created(ctx, progress)
}

// @Summary List own course progress
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	progress, err := c.ProgressService.GetProgress(userID)
	if err != nil {
		util.LogInternalError(ctx, err, "failed to load progress")
		return
	}
	util.Success(ctx, progress)
}

// @Summary Get own progress in one course
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Param courseId path string true "course id"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response
// @Router /progress/{courseId} [get]
func (c *ProgressController) GetCourseProgress(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	progress, err := c.ProgressService.GetCourseProgress(userID, ctx.Param("courseId"))
	if err != nil {
		if errors.Is(err, util.ErrNotEnrolled) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to load progress")
		return
	}
	util.Success(ctx, progress)
}

// @Summary Record lesson activity
// @Description Marks lesson progress; completion grants XP and advances the streak
// @Tags progress
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.ProgressUpdate true "progress update"
// @Success 200 {object} util.Response{data=service.ProgressResult}
// @Failure 404 {object} util.Response
// @Router /progress/update [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req service.ProgressUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID, _ := util.GetUserID(ctx)
	result, err := c.ProgressService.UpdateProgress(userID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotFound), errors.Is(err, util.ErrNotEnrolled):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, "failed to update progress")
		}
		return
	}
	util.Success(ctx, result)
}
