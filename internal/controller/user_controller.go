package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type UserController struct {
	UserService        *service.UserService
	AchievementService *service.AchievementService
}

func NewUserController(userService *service.UserService, achievementService *service.AchievementService) *UserController {
	return &UserController{
		UserService:        userService,
		AchievementService: achievementService,
	}
}

// @Summary Get own profile
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	user, err := c.UserService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to load profile")
		return
	}
	util.Success(ctx, user)
}

// @Summary Get gamification stats
// @Description Returns XP, derived level, streaks and today's goal
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response{data=service.UserStats}
// @Router /users/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	stats, err := c.UserService.GetStats(userID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "failed to load stats")
		return
	}
	util.Success(ctx, stats)
}

// @Summary Get XP leaderboard
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /users/leaderboard [get]
func (c *UserController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.UserService.GetLeaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err, "failed to load leaderboard")
		return
	}
	util.Success(ctx, entries)
}

// @Summary List all achievements
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /achievements [get]
func (c *UserController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.AchievementService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err, "failed to load achievements")
		return
	}
	util.Success(ctx, achievements)
}

// @Summary List achievements with own earned flags
// @Tags achievements
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /users/achievements [get]
func (c *UserController) ListUserAchievements(ctx *gin.Context) {
	userID, _ := util.GetUserID(ctx)
	achievements, err := c.AchievementService.ListForUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err, "failed to load achievements")
		return
	}
	util.Success(ctx, achievements)
}
