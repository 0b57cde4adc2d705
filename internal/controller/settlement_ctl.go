package controller

import (
	"io"

	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementController 店长结算管理
type SettlementController struct {
	settlementSvc *service.SettlementService
	storage       service.StorageProvider
}

// NewSettlementController 创建结算控制器
func NewSettlementController(settlementSvc *service.SettlementService, storage service.StorageProvider) *SettlementController {
	return &SettlementController{settlementSvc: settlementSvc, storage: storage}
}

// ManagerGet 获取待处理结算单
// @Summary 获取待处理结算单
// @Tags Settlement (结算管理)
// @Produce json
// @Param pageNum query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /settlement/managerGet [get]
func (c *SettlementController) ManagerGet(ctx *gin.Context) {
	var req dto.SettlementListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	items, total, err := c.settlementSvc.ListPending(ctx.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(items, total, req.Page, req.PageSize))
}

// Search 搜索结算单（手机号/结算订单号）
func (c *SettlementController) Search(ctx *gin.Context) {
	var req dto.SettlementListReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	items, total, err := c.settlementSvc.List(ctx.Request.Context(), repository.SettlementFilter{
		Status:    req.Status,
		SearchVal: req.SearchVal,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(items, total, req.Page, req.PageSize))
}

// Update 打款确认
// @Summary 结算单打款确认
// @Description 成功：释放冻结并扣减待结算余额；失败：仅记录原因等待重试
// @Tags Settlement (结算管理)
// @Accept json
// @Produce json
// @Param request body dto.SettlementUpdateReq true "打款结果"
// @Success 200 {object} response.Response
// @Router /settlement/update [post]
func (c *SettlementController) Update(ctx *gin.Context) {
	var req dto.SettlementUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	result, err := c.settlementSvc.Reconcile(ctx.Request.Context(), service.ReconcileInput{
		OutTradeNo:   req.OutTradeNo,
		Success:      *req.Success,
		ActualAmount: req.Amount,
		ReceiptFiles: req.ReceiptFiles,
		Remark:       req.Remark,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, result)
}

// UploadReceipt 上传结算凭证图片，返回文件URL
// 存储服务初始化失败时降级为明确的业务错误而不是空指针
func (c *SettlementController) UploadReceipt(ctx *gin.Context) {
	if c.storage == nil {
		fail(ctx, service.NewBusinessError(503, "存储服务未配置，暂不支持上传凭证"))
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		response.Error(ctx, 400, "缺少上传文件")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(ctx, 400, "读取上传文件失败")
		return
	}

	url, err := c.storage.Upload(ctx.Request.Context(), data, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, gin.H{"url": url})
}
