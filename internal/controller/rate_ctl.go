package controller

import (
	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateController 积分规则管理
type RateController struct {
	rateSvc *service.RateRuleService
}

// NewRateController 创建积分规则控制器
func NewRateController(rateSvc *service.RateRuleService) *RateController {
	return &RateController{rateSvc: rateSvc}
}

// Get 获取全部积分规则
func (c *RateController) Get(ctx *gin.Context) {
	rules, err := c.rateSvc.List(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, rules)
}

// Add 新增积分规则
// @Summary 新增积分规则
// @Description maxUsePercent 超过 0.2 或任一比率为负直接拒绝
// @Tags Rate (积分规则)
// @Accept json
// @Produce json
// @Param request body dto.RateAddReq true "规则参数"
// @Success 200 {object} response.Response
// @Router /rate/add [post]
func (c *RateController) Add(ctx *gin.Context) {
	var req dto.RateAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	rule, err := c.rateSvc.Create(ctx.Request.Context(), req.EarnRate, req.UseRate, req.MaxUsePercent)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, rule)
}

// Update 更新积分规则
func (c *RateController) Update(ctx *gin.Context) {
	var req dto.RateUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.rateSvc.Update(ctx.Request.Context(), req.ID, req.EarnRate, req.UseRate, req.MaxUsePercent); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Del 删除积分规则
func (c *RateController) Del(ctx *gin.Context) {
	var req dto.IDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.rateSvc.Delete(ctx.Request.Context(), req.ID); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}
