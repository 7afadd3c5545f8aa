package controller

import (
	"error_book_backend/internal/service"
	"error_book_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// Register godoc
// @Summary 用户注册
// @Description 使用用户名、邮箱和密码注册新用户
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 200 {object} util.Response{data=model.User} "注册成功"
// @Failure 409 {object} util.ErrorResponse "用户名或邮箱已存在"
// @Failure 422 {object} util.ErrorResponse "请求参数验证失败"
// @Router /api/v1/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	user, err := c.AuthService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "注册成功", user)
}

// swagger:model LoginRequest
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 用户名或邮箱加密码登录，返回访问令牌与刷新令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=service.TokenPair} "登录成功"
// @Failure 401 {object} util.ErrorResponse "用户名或密码错误"
// @Router /api/v1/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	pair, err := c.AuthService.Login(req.UsernameOrEmail, req.Password)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "登录成功", pair)
}

// swagger:model RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh godoc
// @Summary 刷新令牌
// @Description 使用刷新令牌换取新的令牌对
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RefreshRequest true "刷新令牌"
// @Success 200 {object} util.Response{data=service.TokenPair} "刷新成功"
// @Failure 401 {object} util.ErrorResponse "令牌无效或已过期"
// @Router /api/v1/auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.FailBind(ctx, err)
		return
	}

	pair, err := c.AuthService.Refresh(req.RefreshToken)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "Token 刷新成功", pair)
}

// Me godoc
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "Success"
// @Failure 401 {object} util.ErrorResponse "Unauthorized"
// @Router /api/v1/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Fail(ctx, util.NewAuthenticationError(""))
		return
	}

	util.Success(ctx, "获取成功", user)
}

// UpdateMe godoc
// @Summary 更新当前用户资料
// @Description 部分更新昵称、简介与头像
// @Tags 认证
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.UpdateProfileInput true "资料字段"
// @Success 200 {object} util.Response{data=model.User} "更新成功"
// @Router /api/v1/auth/me [put]
func (c *AuthController) UpdateMe(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Fail(ctx, util.NewAuthenticationError(""))
		return
	}

	var input service.UpdateProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.FailBind(ctx, err)
		return
	}

	updated, err := c.AuthService.UpdateProfile(user, input)
	if err != nil {
		util.Fail(ctx, err)
		return
	}

	util.Success(ctx, "更新成功", updated)
}
