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

// ==================== ProductService 商品服务 ====================

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	skuRepo     repository.SkuRepository
	cateRepo    repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(
	productRepo repository.ProductRepository,
	skuRepo repository.SkuRepository,
	cateRepo repository.CategoryRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		skuRepo:     skuRepo,
		cateRepo:    cateRepo,
	}
}

// ==================== 校验 ====================

// validateProduct 创建/更新商品前的统一校验
func (s *ProductService) validateProduct(ctx context.Context, p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "商品名称不能为空")
	}
	if p.CategoryID <= 0 {
		return NewValidationError("categoryId", "必须选择一级分类")
	}
	if p.OriginalPrice < 0 || p.CurrentPrice < 0 {
		return NewValidationError("price", "价格不能为负数")
	}
	// 原价恒不低于现价
	if p.OriginalPrice < p.CurrentPrice {
		return NewValidationError("originalPrice", "原价不能低于现价")
	}
	for i := range p.Skus {
		if p.Skus[i].Price < 0 {
			return NewValidationError("skus.price", "SKU价格不能为负数")
		}
		if p.Skus[i].Stock < 0 {
			return NewValidationError("skus.stock", "SKU库存不能为负数")
		}
		if p.Skus[i].UnitCount < 0 {
			return NewValidationError("skus.unitCount", "单位换算系数不能为负数")
		}
	}

	// 分类引用存在性校验
	if _, err := s.cateRepo.GetByID(ctx, p.CategoryID); err != nil {
		return NewBusinessError(400, "一级分类不存在")
	}
	if p.SubCategoryID > 0 {
		if _, err := s.cateRepo.GetByID(ctx, p.SubCategoryID); err != nil {
			return NewBusinessError(400, "二级分类不存在")
		}
	}
	if p.ThirdCategoryID > 0 {
		if _, err := s.cateRepo.GetByID(ctx, p.ThirdCategoryID); err != nil {
			return NewBusinessError(400, "三级分类不存在")
		}
	}
	return nil
}

// applyPriceRange 根据 SKU 列表聚合最低/最高售价
// 无 SKU 时最低/最高价跟随商品现价
func applyPriceRange(p *model.Product) {
	if len(p.Skus) == 0 {
		p.MinPrice = p.CurrentPrice
		p.MaxPrice = p.CurrentPrice
		return
	}
	min, max := p.Skus[0].Price, p.Skus[0].Price
	for _, sku := range p.Skus[1:] {
		if sku.Price < min {
			min = sku.Price
		}
		if sku.Price > max {
			max = sku.Price
		}
	}
	p.MinPrice = min
	p.MaxPrice = max
}

// ==================== 操作 ====================

// Create 新增商品（级联创建 SKU）
func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if err := s.validateProduct(ctx, p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = model.ProductStatusActive
	}
	if p.Hot == "" {
		p.Hot = model.ProductHotDisable
	}
	if p.Type == "" {
		p.Type = model.ProductTypeUser
	}
	applyPriceRange(p)
	if err := s.productRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("创建商品失败: %w", err)
	}
	return nil
}

// GetByID 查询商品详情（含 SKU）
func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "商品不存在")
		}
		return nil, err
	}
	return p, nil
}

// List 分页查询商品
func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}

// Search 按名称/货号模糊搜索
func (s *ProductService) Search(ctx context.Context, keyword string, page, pageSize int) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, repository.ProductFilter{
		Keyword:  strings.TrimSpace(keyword),
		Page:     page,
		PageSize: pageSize,
	})
}

// Update 更新商品（SKU 列表整体替换）
func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if p.ID <= 0 {
		return NewValidationError("id", "商品id不能为空")
	}
	if _, err := s.productRepo.GetByID(ctx, p.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewBusinessError(404, "商品不存在")
		}
		return err
	}
	if err := s.validateProduct(ctx, p); err != nil {
		return err
	}
	applyPriceRange(p)
	if err := s.productRepo.Update(ctx, p); err != nil {
		return fmt.Errorf("更新商品失败: %w", err)
	}
	return nil
}

// Delete 删除商品及其全部 SKU，返回删除的行数
func (s *ProductService) Delete(ctx context.Context, id int64) (goods int64, skus int64, err error) {
	if _, err := s.productRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, NewBusinessError(404, "商品不存在")
		}
		return 0, 0, err
	}
	goods, skus, err = s.productRepo.Delete(ctx, id)
	if err != nil {
		return 0, 0, fmt.Errorf("删除商品失败: %w", err)
	}
	return goods, skus, nil
}

// SetStatus 上下架商品
func (s *ProductService) SetStatus(ctx context.Context, id int64, status string) error {
	if status != model.ProductStatusActive && status != model.ProductStatusInactive {
		return NewValidationError("status", "无效的商品状态")
	}
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	return s.productRepo.Update(ctx, p)
}
