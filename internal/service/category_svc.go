package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/gorm"
)

// ==================== CategoryService 分类服务 ====================

// CategoryService 分类服务
// toB / toC 两棵分类树共用同一套逻辑，通过 scope 隔离，互不引用
type CategoryService struct {
	cateRepo    repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(cateRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryService {
	return &CategoryService{cateRepo: cateRepo, productRepo: productRepo}
}

// CategoryPage 一页分类及随之返回的父级名称映射
// ParentNames 是本次查询结果的纯函数值，不是全局缓存：
// 不在已加载集合内的父级解析为空字符串，需要完整解析的调用方
// 必须先加载对应的上级页
type CategoryPage struct {
	List        []model.Category
	Total       int64
	ParentNames map[int64]string
}

// ==================== 查询 ====================

// ResolveChildren 获取某一父级下的分类页
// parentID 为 0 表示根层级（一级分类）
func (s *CategoryService) ResolveChildren(ctx context.Context, scope string, parentID int64, page, pageSize int) (*CategoryPage, error) {
	list, total, err := s.cateRepo.List(ctx, repository.CategoryFilter{
		Scope:    scope,
		ParentID: parentID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}

	result := &CategoryPage{List: list, Total: total}

	// 非根层级时解析父级名称
	if parentID != model.RootParentID {
		parents, err := s.cateRepo.ListByLevel(ctx, scope, levelOfParent(list))
		if err == nil {
			result.ParentNames = BuildParentNameMap(parents)
		}
	}

	return result, nil
}

// levelOfParent 从子分类页推断父级所在层级
func levelOfParent(children []model.Category) int {
	if len(children) == 0 {
		return 1
	}
	level := children[0].Level - 1
	if level < 1 {
		level = 1
	}
	return level
}

// BuildParentNameMap 由已加载的分类集合构建 id -> name 映射
// 对同一集合重复调用结果恒等；集合外的 id 查不到，调用方取零值空串
func BuildParentNameMap(cates []model.Category) map[int64]string {
	names := make(map[int64]string, len(cates))
	for _, c := range cates {
		names[c.ID] = c.Name
	}
	return names
}

// ListByLevel 按层级获取某一业务域的全部分类
func (s *CategoryService) ListByLevel(ctx context.Context, scope string, level int) ([]model.Category, error) {
	if level < 1 || level > model.CategoryMaxLevel {
		return nil, NewValidationError("level", "分类层级必须在1到3之间")
	}
	return s.cateRepo.ListByLevel(ctx, scope, level)
}

// ==================== 变更 ====================

// Create 新增分类
// 子分类层级恒等于父分类层级 + 1，根层级为 1
func (s *CategoryService) Create(ctx context.Context, scope, name string, parentID int64) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("name", "分类名称不能为空")
	}

	level := 1
	if parentID != model.RootParentID {
		parent, err := s.cateRepo.GetByID(ctx, parentID)
		if err != nil {
			return nil, NewBusinessError(404, "上级分类不存在")
		}
		if parent.Scope != scope {
			// 两棵树不允许跨域挂载
			return nil, NewBusinessError(400, "上级分类不属于当前业务域")
		}
		if parent.Level >= model.CategoryMaxLevel {
			return nil, NewBusinessError(400, "分类最多支持三级")
		}
		level = parent.Level + 1
	}

	// 同级重名预检
	if exist, err := s.cateRepo.GetByName(ctx, scope, name, parentID); err == nil && exist != nil {
		return nil, NewBusinessError(400, "同级分类名称已存在")
	}

	cate := &model.Category{
		Name:     name,
		ParentID: parentID,
		Level:    level,
		Scope:    scope,
	}
	if err := s.cateRepo.Create(ctx, cate); err != nil {
		return nil, fmt.Errorf("创建分类失败: %w", err)
	}
	return cate, nil
}

// Rename 重命名分类（不支持改挂父级）
func (s *CategoryService) Rename(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return NewValidationError("name", "分类名称不能为空")
	}
	if _, err := s.cateRepo.GetByID(ctx, id); err != nil {
		return NewBusinessError(404, "分类不存在")
	}
	return s.cateRepo.UpdateName(ctx, id, name)
}

// Delete 删除分类
// 存在子分类或被商品引用时拒绝，删除前必须预检
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.cateRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError(404, "分类不存在")
		}
		return err
	}

	children, err := s.cateRepo.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if children > 0 {
		return NewBusinessError(400, "该分类下存在子分类，无法删除")
	}

	refs, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return NewBusinessError(400, "该分类下存在商品，无法删除")
	}

	return s.cateRepo.Delete(ctx, id)
}
