package controller

import (
	"strconv"

	"mall_admin_server/internal/api/dto"
	"mall_admin_server/internal/service"
	"mall_admin_server/pkg/response"

	"github.com/gin-gonic/gin"
)

// CategoryController 分类管理
// 同一控制器按 scope 实例化两份，分别挂在 /cate 与 /tocCate 下
type CategoryController struct {
	cateSvc *service.CategoryService
	scope   string
}

// NewCategoryController 创建分类控制器
func NewCategoryController(cateSvc *service.CategoryService, scope string) *CategoryController {
	return &CategoryController{cateSvc: cateSvc, scope: scope}
}

// Get 获取分类列表
// @Summary 获取分类列表
// @Description 按父级分页查询分类，parentId 缺省查一级分类
// @Tags Category (分类管理)
// @Produce json
// @Param parentId query int false "父分类ID"
// @Param pageNum query int false "页码" default(1)
// @Param pageSize query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Router /cate/get [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	var req dto.CategoryListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	page, err := c.cateSvc.ResolveChildren(ctx.Request.Context(), c.scope, req.ParentID, req.Page, req.PageSize)
	if err != nil {
		fail(ctx, err)
		return
	}

	list := make([]dto.CategoryResp, 0, len(page.List))
	for _, cate := range page.List {
		list = append(list, dto.CategoryResp{
			ID:         cate.ID,
			Name:       cate.Name,
			ParentID:   cate.ParentID,
			ParentName: page.ParentNames[cate.ParentID],
			Level:      cate.Level,
			Sort:       cate.Sort,
		})
	}
	response.Success(ctx, dto.NewPageResp(list, page.Total, req.Page, req.PageSize))
}

// GetByLevel 按层级获取全部分类（级联选择器用）
func (c *CategoryController) GetByLevel(ctx *gin.Context) {
	level, err := strconv.Atoi(ctx.DefaultQuery("level", "1"))
	if err != nil {
		response.Error(ctx, 400, "无效的层级参数")
		return
	}
	cates, err := c.cateSvc.ListByLevel(ctx.Request.Context(), c.scope, level)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, cates)
}

// Add 新增分类
// @Summary 新增分类
// @Tags Category (分类管理)
// @Accept json
// @Produce json
// @Param request body dto.CategoryAddReq true "分类参数"
// @Success 200 {object} response.Response
// @Router /cate/add [post]
func (c *CategoryController) Add(ctx *gin.Context) {
	var req dto.CategoryAddReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	cate, err := c.cateSvc.Create(ctx.Request.Context(), c.scope, req.Name, req.ParentID)
	if err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, cate)
}

// Update 重命名分类
func (c *CategoryController) Update(ctx *gin.Context) {
	var req dto.CategoryUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.cateSvc.Rename(ctx.Request.Context(), req.ID, req.Name); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}

// Del 删除分类
// 存在子分类或被商品引用时拒绝
func (c *CategoryController) Del(ctx *gin.Context) {
	var req dto.IDReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, 400, "参数错误: "+err.Error())
		return
	}

	if err := c.cateSvc.Delete(ctx.Request.Context(), req.ID); err != nil {
		fail(ctx, err)
		return
	}
	response.Success(ctx, nil)
}
