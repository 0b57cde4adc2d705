package controller

import (
	"strconv"

	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/model"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// InventoryController 库存套餐管理
type InventoryController struct {
	inventorySvc *service.InventoryService
}

// NewInventoryController 创建库存控制器
func NewInventoryController(inventorySvc *service.InventoryService) *InventoryController {
	return &InventoryController{inventorySvc: inventorySvc}
}

func buildPackage(req dto.InventoryPackageAddReq) *model.InventoryPackage {
	items := make([]model.InventoryItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.InventoryItem{
			ProductID: item.ProductID,
			SkuID:     item.SkuID,
			Quantity:  item.Quantity,
			UnitCount: item.UnitCount,
		})
	}
	return &model.InventoryPackage{
		Name:  req.Name,
		Desc:  req.Desc,
		Items: items,
	}
}

// Get 获取套餐详情
func (c *InventoryController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		response.Error(ctx, 400, "无效的套餐ID")
		return
	}

	detail, err := c.inventorySvc.GetPackageDetail(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, detail)
}

// ProductData 批量获取套餐商品行的商品快照
// @Summary 批量获取套餐商品行的商品快照
// @Tags Inventory (库存管理)
// @Accept json
// @Produce json
// @Param request body dto.InventoryProductDataReq true "套餐商品行"
// @Success 200 {object} response.Response
// @Router /inventoryPackage/productData [post]
func (c *InventoryController) ProductData(ctx *gin.Context) {
	var req dto.InventoryProductDataReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	items := make([]model.InventoryItem, 0, len(req.InventoryProduct))
	for _, ref := range req.InventoryProduct {
		items = append(items, model.InventoryItem{
			ProductID: ref.ProductID,
			SkuID:     ref.SkuID,
			Quantity:  ref.Quantity,
			UnitCount: ref.UnitCount,
		})
	}

	rows, err := c.inventorySvc.ResolveItemProducts(ctx.Request.Context(), items)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, rows)
}

// GetAll 获取全部套餐
func (c *InventoryController) GetAll(ctx *gin.Context) {
	pkgs, err := c.inventorySvc.ListPackages(ctx.Request.Context())
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, pkgs)
}

// Add 新增套餐
// @Summary 新增库存套餐
// @Tags Inventory (库存管理)
// @Accept json
// @Produce json
// @Param request body dto.InventoryPackageAddReq true "套餐参数"
// @Success 200 {object} response.Response
// @Router /inventoryPackage/add [post]
func (c *InventoryController) Add(ctx *gin.Context) {
	var req dto.InventoryPackageAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	pkg := buildPackage(req)
	if err := c.inventorySvc.CreatePackage(ctx.Request.Context(), pkg); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, pkg)
}

// Update 更新套餐（商品行整体替换）
func (c *InventoryController) Update(ctx *gin.Context) {
	var req dto.InventoryPackageUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	pkg := buildPackage(req.InventoryPackageAddReq)
	pkg.ID = req.ID
	if err := c.inventorySvc.UpdatePackage(ctx.Request.Context(), pkg); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, pkg)
}

// SetStatus 启用/停用套餐
func (c *InventoryController) SetStatus(ctx *gin.Context) {
	var req dto.InventoryPackageStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.inventorySvc.SetPackageStatus(ctx.Request.Context(), req.ID, req.Status); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Del 删除套餐
func (c *InventoryController) Del(ctx *gin.Context) {
	var req dto.IDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.inventorySvc.DeletePackage(ctx.Request.Context(), req.ID); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Activate 门店激活套餐
// @Summary 门店激活库存套餐
// @Description 门店库存状态 UNINITIALIZED -> INITIALIZED，只允许激活一次
// @Tags Inventory (库存管理)
// @Accept json
// @Produce json
// @Param request body dto.InventoryActivateReq true "激活参数"
// @Success 200 {object} response.Response
// @Router /inventoryPackage/activate [post]
func (c *InventoryController) Activate(ctx *gin.Context) {
	var req dto.InventoryActivateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.inventorySvc.Activate(ctx.Request.Context(), req.StoreID, req.PackageID); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// StoreStock 查询门店库存台账
func (c *InventoryController) StoreStock(ctx *gin.Context) {
	storeID, err := strconv.ParseInt(ctx.Query("storeId"), 10, 64)
	if err != nil {
		response.Error(ctx, 400, "无效的门店ID")
		return
	}

	rows, err := c.inventorySvc.StoreStock(ctx.Request.Context(), storeID)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, rows)
}

// AdjustStock 手动调整门店库存
func (c *InventoryController) AdjustStock(ctx *gin.Context) {
	var req dto.StockAdjustReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.inventorySvc.AdjustStock(ctx.Request.Context(), req.StoreID, req.ProductID, req.SkuID, req.Delta); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}
