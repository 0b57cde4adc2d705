package controller

import (
	"strconv"

	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// StoreController 门店管理
type StoreController struct {
	storeSvc *service.StoreService
}

// NewStoreController 创建门店控制器
func NewStoreController(storeSvc *service.StoreService) *StoreController {
	return &StoreController{storeSvc: storeSvc}
}

// Get 分页获取门店列表
func (c *StoreController) Get(ctx *gin.Context) {
	var req dto.StoreListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	stores, total, err := c.storeSvc.List(ctx.Request.Context(), repository.StoreFilter{
		Status:    req.Status,
		SearchVal: req.SearchVal,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(stores, total, req.Page, req.PageSize))
}

// Detail 获取门店详情
func (c *StoreController) Detail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		response.Error(ctx, 400, "无效的门店ID")
		return
	}

	store, err := c.storeSvc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, store)
}

// Add 新增门店
func (c *StoreController) Add(ctx *gin.Context) {
	var req dto.StoreAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	store := &model.Store{
		Name:        req.Name,
		Address:     req.Address,
		Logo:        req.Logo,
		Phone:       req.Phone,
		ManagerID:   req.ManagerID,
		ManagerName: req.ManagerName,
	}
	if err := c.storeSvc.Create(ctx.Request.Context(), store); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, store)
}

// Update 更新门店基础信息
func (c *StoreController) Update(ctx *gin.Context) {
	var req dto.StoreUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	err := c.storeSvc.Update(ctx.Request.Context(), req.ID, req.Name, req.Address, req.Logo, req.Phone, req.ManagerName)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// SetStatus 门店营业/停业
func (c *StoreController) SetStatus(ctx *gin.Context) {
	var req dto.StoreStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.storeSvc.SetStatus(ctx.Request.Context(), req.ID, req.Status); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}
