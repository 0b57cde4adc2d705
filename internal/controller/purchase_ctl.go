package controller

import (
	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// PurchaseOrderController 店长进货单管理
type PurchaseOrderController struct {
	purchaseSvc *service.PurchaseOrderService
}

// NewPurchaseOrderController 创建进货单控制器
func NewPurchaseOrderController(purchaseSvc *service.PurchaseOrderService) *PurchaseOrderController {
	return &PurchaseOrderController{purchaseSvc: purchaseSvc}
}

// Get 分页获取进货单
// @Summary 分页获取进货单
// @Tags PurchaseOrder (进货单管理)
// @Produce json
// @Param status query string false "状态筛选，ALL 查全部"
// @Param storeId query int false "门店ID"
// @Param pageNum query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /purchasedOrder/get [get]
func (c *PurchaseOrderController) Get(ctx *gin.Context) {
	filter, req, err := bindOrderFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.purchaseSvc.List(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// Search 搜索进货单，条件来自请求体
func (c *PurchaseOrderController) Search(ctx *gin.Context) {
	filter, req, err := bindOrderSearchFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.purchaseSvc.List(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// Ship 进货单发货
func (c *PurchaseOrderController) Ship(ctx *gin.Context) {
	var req dto.OrderOutTradeNoReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.purchaseSvc.Ship(ctx.Request.Context(), req.OutTradeNo); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Pickup 取货确认
// @Summary 取货确认
// @Description SHIPPED -> COMPLETED，同一事务内扣减门店库存，任一商品行不足则整单失败
// @Tags PurchaseOrder (进货单管理)
// @Accept json
// @Produce json
// @Param request body dto.OrderOutTradeNoReq true "业务订单号"
// @Success 200 {object} response.Response
// @Router /purchasedOrder/pickup [post]
func (c *PurchaseOrderController) Pickup(ctx *gin.Context) {
	var req dto.OrderOutTradeNoReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.purchaseSvc.Pickup(ctx.Request.Context(), req.OutTradeNo); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Cancel 取消进货单（仅 PAID 状态）
func (c *PurchaseOrderController) Cancel(ctx *gin.Context) {
	var req dto.OrderCancelReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.purchaseSvc.Cancel(ctx.Request.Context(), req.OutTradeNo, req.CancelReason); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}
