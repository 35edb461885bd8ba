package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/model"
	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type CourseController struct {
	CourseService *service.CourseService
	LessonService *service.LessonService
}

func NewCourseController(courseService *service.CourseService, lessonService *service.LessonService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		LessonService: lessonService,
	}
}

// @Summary List published courses
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	role, _ := util.GetUserRole(ctx)

	var (
		courses []model.Course
		err     error
	)
	// Instructors and admins see unpublished courses too.
	if role == model.Instructor || role == model.Admin {
		courses, err = c.CourseService.ListAll()
	} else {
		courses, err = c.CourseService.ListPublished()
	}
	if err != nil {
		util.LogInternalError(ctx, err, "failed to list courses")
		return
	}
	util.Success(ctx, courses)
}

// @Summary Get a course with its lessons
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} util.Response{data=service.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	detail, err := c.CourseService.GetCourse(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to load course")
		return
	}
	util.Success(ctx, detail)
}

// @Summary List a course's lessons in order
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/lessons [get]
func (c *CourseController) ListCourseLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.ListByCourse(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to list lessons")
		return
	}
	util.Success(ctx, lessons)
}

// @Summary Create a course
// @Tags courses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body service.CourseRequest true "course"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.CreateCourse(req)
	if err != nil {
		util.LogInternalError(ctx, err, "failed to create course")
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags courses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Param body body service.CourseRequest true "course"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.UpdateCourse(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to update course")
		return
	}
	util.Success(ctx, course)
}

// @Summary Delete a course
// @Tags courses
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.CourseService.DeleteCourse(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to delete course")
		return
	}
	util.Success(ctx, nil)
}

type publishRequest struct {
	Published bool `json:"published"`
}

// @Summary Publish or unpublish a course
// @Tags courses
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Param body body publishRequest true "publish flag"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id}/publish [post]
func (c *CourseController) PublishCourse(ctx *gin.Context) {
	var req publishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.PublishCourse(ctx.Param("id"), req.Published)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to publish course")
		return
	}
	util.Success(ctx, course)
}
