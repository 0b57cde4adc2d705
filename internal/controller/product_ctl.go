package controller

import (
	"encoding/json"
	"strconv"

	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// ProductController 商品管理
type ProductController struct {
	productSvc *service.ProductService
}

// NewProductController 创建商品控制器
func NewProductController(productSvc *service.ProductService) *ProductController {
	return &ProductController{productSvc: productSvc}
}

// buildProduct 由请求参数组装商品实体
func buildProduct(req dto.ProductAddReq) *model.Product {
	proImages, _ := json.Marshal(req.ProImages)
	models, _ := json.Marshal(req.Models)

	skus := make([]model.Sku, 0, len(req.Skus))
	for _, s := range req.Skus {
		skus = append(skus, model.Sku{
			ID:        s.ID,
			SkuCode:   s.SkuCode,
			Price:     s.Price,
			Stock:     s.Stock,
			Image:     s.Image,
			Attrs:     datatypes.JSONMap(s.Attrs),
			UnitCount: s.UnitCount,
		})
	}

	return &model.Product{
		SkuNo:           req.SkuNo,
		Name:            req.Name,
		Desc:            req.Desc,
		CategoryID:      req.CategoryID,
		SubCategoryID:   req.SubCategoryID,
		ThirdCategoryID: req.ThirdCategoryID,
		OriginalPrice:   req.OriginalPrice,
		CurrentPrice:    req.CurrentPrice,
		Cover:           req.Cover,
		ProImages:       proImages,
		Models:          models,
		Status:          req.Status,
		Hot:             req.Hot,
		Type:            req.Type,
		Skus:            skus,
	}
}

// Get 获取商品详情
// @Summary 获取商品详情
// @Tags Product (商品管理)
// @Produce json
// @Param id query int true "商品ID"
// @Success 200 {object} response.Response
// @Router /product/get [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("id"), 10, 64)
	if err != nil {
		response.Error(ctx, 400, "无效的商品ID")
		return
	}

	product, err := c.productSvc.GetByID(ctx.Request.Context(), id)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, product)
}

// GetAllTob 分页获取商品列表
// @Summary 分页获取商品列表
// @Tags Product (商品管理)
// @Produce json
// @Param categoryId query int false "分类ID"
// @Param status query string false "状态筛选"
// @Param pageNum query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /product/getAllTob [get]
func (c *ProductController) GetAllTob(ctx *gin.Context) {
	var req dto.ProductListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	products, total, err := c.productSvc.List(ctx.Request.Context(), repository.ProductFilter{
		CategoryID: req.CategoryID,
		Status:     req.Status,
		Type:       req.Type,
		Hot:        req.Hot,
		Keyword:    req.SearchVal,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(products, total, req.Page, req.PageSize))
}

// Search 按名称/货号搜索商品
func (c *ProductController) Search(ctx *gin.Context) {
	var req dto.ProductListReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	products, total, err := c.productSvc.Search(ctx.Request.Context(), req.SearchVal, req.Page, req.PageSize)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.NewPageResp(products, total, req.Page, req.PageSize))
}

// Add 新增商品
// @Summary 新增商品
// @Tags Product (商品管理)
// @Accept json
// @Produce json
// @Param request body dto.ProductAddReq true "商品参数"
// @Success 200 {object} response.Response
// @Router /product/add [post]
func (c *ProductController) Add(ctx *gin.Context) {
	var req dto.ProductAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	product := buildProduct(req)
	if err := c.productSvc.Create(ctx.Request.Context(), product); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, product)
}

// Update 更新商品（SKU 整体替换）
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	product := buildProduct(req.ProductAddReq)
	product.ID = req.ID
	if err := c.productSvc.Update(ctx.Request.Context(), product); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, product)
}

// Del 删除商品及其 SKU
func (c *ProductController) Del(ctx *gin.Context) {
	var req dto.IDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	goods, skus, err := c.productSvc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, dto.ProductDeleteResp{Goods: goods, Skus: skus})
}
