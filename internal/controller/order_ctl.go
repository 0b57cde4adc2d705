package controller

import (
	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// OrderController 订单管理（商品订单 / 会员订单 / 线下订单）
type OrderController struct {
	orderSvc *service.OrderService
}

// NewOrderController 创建订单控制器
func NewOrderController(orderSvc *service.OrderService) *OrderController {
	return &OrderController{orderSvc: orderSvc}
}

func bindOrderFilter(ctx *gin.Context) (repository.OrderFilter, *dto.OrderListReq, error) {
	var req dto.OrderListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		return repository.OrderFilter{}, nil, err
	}
	return orderFilterOf(req), &req, nil
}

// bindOrderSearchFilter search 接口条件放在 JSON 请求体里
func bindOrderSearchFilter(ctx *gin.Context) (repository.OrderFilter, *dto.OrderListReq, error) {
	var req dto.OrderListReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return repository.OrderFilter{}, nil, err
	}
	return orderFilterOf(req), &req, nil
}

func orderFilterOf(req dto.OrderListReq) repository.OrderFilter {
	return repository.OrderFilter{
		Status:    req.Status,
		SearchVal: req.SearchVal,
		StoreID:   req.StoreID,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}
}

// ==================== 商品订单 ====================

// GetProduct 分页获取商品订单
// @Summary 分页获取商品订单
// @Tags Order (订单管理)
// @Produce json
// @Param status query string false "状态筛选，ALL 查全部"
// @Param searchVal query string false "订单号/手机号"
// @Param pageNum query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /order/getProduct [get]
func (c *OrderController) GetProduct(ctx *gin.Context) {
	filter, req, err := bindOrderFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.orderSvc.ListProductOrders(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// Search 搜索商品订单（订单号/手机号模糊匹配），条件来自请求体
func (c *OrderController) Search(ctx *gin.Context) {
	filter, req, err := bindOrderSearchFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.orderSvc.ListProductOrders(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// EditAddress 修改收货地址（发货前）
func (c *OrderController) EditAddress(ctx *gin.Context) {
	var req dto.OrderEditAddressReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	err := c.orderSvc.EditAddress(ctx.Request.Context(), req.OutTradeNo, datatypes.JSONMap(req.AddressInfo))
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// SendGoods 商品订单发货
// @Summary 商品订单发货
// @Description PAID -> SHIPPED，快递/同城配送必须携带物流信息
// @Tags Order (订单管理)
// @Accept json
// @Produce json
// @Param request body dto.OrderSendGoodsReq true "发货参数"
// @Success 200 {object} response.Response
// @Router /order/sendGoods [post]
func (c *OrderController) SendGoods(ctx *gin.Context) {
	var req dto.OrderSendGoodsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	err := c.orderSvc.SendGoods(ctx.Request.Context(), service.ShipmentInput{
		OutTradeNo:     req.OutTradeNo,
		LogisticsType:  req.LogisticsType,
		ExpressCompany: req.ExpressCompany,
		TrackingNo:     req.TrackingNo,
		ItemDesc:       req.ItemDesc,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Cancel 取消商品订单
func (c *OrderController) Cancel(ctx *gin.Context) {
	var req dto.OrderCancelReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.orderSvc.CancelProductOrder(ctx.Request.Context(), req.OutTradeNo, req.CancelReason); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Stats 商品订单状态汇总
func (c *OrderController) Stats(ctx *gin.Context) {
	stats, err := c.orderSvc.ProductOrderStats(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, stats)
}

// ==================== 会员订单 ====================

// GetVip 分页获取会员订单
func (c *OrderController) GetVip(ctx *gin.Context) {
	filter, req, err := bindOrderFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.orderSvc.ListVipOrders(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// SearchVipOrder 搜索会员订单，条件来自请求体
func (c *OrderController) SearchVipOrder(ctx *gin.Context) {
	filter, req, err := bindOrderSearchFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.orderSvc.ListVipOrders(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}

// SendVip 会员订单履约（同步支付方后台订单）
func (c *OrderController) SendVip(ctx *gin.Context) {
	var req dto.OrderOutTradeNoReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.orderSvc.SendVip(ctx.Request.Context(), req.OutTradeNo); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// ==================== 线下订单 ====================

// OfflineOrder 分页获取线下订单（只读）
func (c *OrderController) OfflineOrder(ctx *gin.Context) {
	filter, req, err := bindOrderFilter(ctx)
	if err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	orders, total, err := c.orderSvc.ListOfflineOrders(ctx.Request.Context(), filter)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(orders, total, req.Page, req.PageSize))
}
