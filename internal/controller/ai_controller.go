package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type AIController struct {
	AIService      *service.AIService
	YouTubeService *service.YouTubeService
}

func NewAIController(aiService *service.AIService, youtubeService *service.YouTubeService) *AIController {
	return &AIController{
		AIService:      aiService,
		YouTubeService: youtubeService,
	}
}

type lessonContentRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
}

// @Summary Generate lesson content
// @Description Drafts Markdown lesson content for instructors
// @Tags ai
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body lessonContentRequest true "topic"
// @Success 200 {object} util.Response
// @Router /ai/lesson-content [post]
func (c *AIController) GenerateLessonContent(ctx *gin.Context) {
	var req lessonContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "beginner"
	}

	content, err := c.AIService.GenerateLessonContent(ctx.Request.Context(), req.Topic, req.Difficulty)
	if err != nil {
		util.LogInternalError(ctx, err, "content generation failed")
		return
	}
	util.Success(ctx, gin.H{"content": content})
}

// @Summary Search supplementary videos
// @Tags ai
// @Security ApiKeyAuth
// @Produce json
// @Param q query string true "search query"
// @Param limit query int false "max results"
// @Success 200 {object} util.Response
// @Router /search/videos [get]
func (c *AIController) SearchVideos(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		util.BadRequest(ctx, "missing query parameter q")
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	videos, err := c.YouTubeService.SearchVideos(ctx.Request.Context(), query, limit)
	if err != nil {
		util.LogInternalError(ctx, err, "video search failed")
		return
	}
	util.Success(ctx, videos)
}
