package middleware

import (
	"strings"

	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// 上下文键
const (
	CtxUserID   = "userId"
	CtxUsername = "username"
	CtxRole     = "role"
)

// JWTAuth 后台接口鉴权
// 令牌缺失或失效返回业务码 401，HTTP 状态同步为 401，前端据此跳转登录
func JWTAuth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.Error(ctx, 401, "未登录")
			ctx.Abort()
			return
		}

		tokenStr := header
		if strings.HasPrefix(header, "Bearer ") {
			tokenStr = strings.TrimPrefix(header, "Bearer ")
		}

		claims, err := authSvc.ParseToken(tokenStr)
		if err != nil {
			response.Error(ctx, 401, "登录已过期，请重新登录")
			ctx.Abort()
			return
		}

		ctx.Set(CtxUserID, claims.UserID)
		ctx.Set(CtxUsername, claims.Username)
		ctx.Set(CtxRole, claims.Role)
		ctx.Next()
	}
}
