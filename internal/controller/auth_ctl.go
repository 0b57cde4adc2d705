package controller

import (
	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthController 后台登录与账号管理
type AuthController struct {
	authSvc *service.AuthService
}

// NewAuthController 创建认证控制器
func NewAuthController(authSvc *service.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// Login 登录
// @Summary 后台登录
// @Tags Auth (认证)
// @Accept json
// @Produce json
// @Param request body dto.LoginReq true "登录参数"
// @Success 200 {object} response.Response
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	result, err := c.authSvc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, result)
}

// CreateUser 新增后台账号
func (c *AuthController) CreateUser(ctx *gin.Context) {
	var req dto.UserAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	user, err := c.authSvc.CreateUser(ctx.Request.Context(), req.Username, req.Password, req.Nickname, req.Role)
	if err != nil {
		fail(ctx, err)
		return
	}
	// 不回传密码哈希
	user.Password = ""
	response.Success(ctx, user)
}
