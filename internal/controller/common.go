package controller

import (
	"errors"

	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// fail 将服务层错误映射为统一响应信封
// 校验错误与状态机错误归为 400，业务错误透传其业务码，其余按 500 处理
func fail(ctx *gin.Context, err error) {
	var be *service.BusinessError
	if errors.As(err, &be) {
		response.Error(ctx, be.Code, be.Message)
		return
	}
	if service.IsValidationError(err) || service.IsInvalidTransitionError(err) {
		response.Error(ctx, 400, err.Error())
		return
	}
	response.Error(ctx, 500, err.Error())
}
