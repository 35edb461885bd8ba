package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"balanceed_backend/internal/service"
	"balanceed_backend/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary Register a new account
// @Description Creates a student account and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "registration details"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AuthService.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered), errors.Is(err, util.ErrUsernameTaken):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err, "registration failed")
		}
		return
	}

	util.Created(ctx, resp)
}

// @Summary Log in
// @Description Verifies credentials and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AuthService.Login(req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, "login failed")
		return
	}

	util.Success(ctx, resp)
}
