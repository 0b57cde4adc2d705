package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应信封
// code == 200 表示成功，其余均为业务失败，message 为可读提示
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应 (code=200)
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// Error 失败响应，HTTP 层仍返回 200，业务码区分失败类型
// 凭证失效（401）例外：HTTP 状态同步为 401，前端据此跳转登录
func Error(ctx *gin.Context, code int, message string) {
	httpStatus := http.StatusOK
	if code == http.StatusUnauthorized {
		httpStatus = http.StatusUnauthorized
	}
	ctx.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}
