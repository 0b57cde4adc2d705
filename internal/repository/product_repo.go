package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// ProductFilter 商品查询条件
type ProductFilter struct {
	CategoryID int64
	Status     string
	Type       string
	Hot        string
	Keyword    string // 按名称 / 货号模糊搜索
	Page       int
	PageSize   int
}

// ==================== ProductRepository 商品仓库 ====================

// ProductRepository 商品仓库接口
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) (goods int64, skus int64, err error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	// 级联创建 SKU
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Preload("Skus").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.CategoryID > 0 {
		db = db.Where("category_id = ? OR sub_category_id = ? OR third_category_id = ?",
			filter.CategoryID, filter.CategoryID, filter.CategoryID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Hot != "" {
		db = db.Where("hot = ?", filter.Hot)
	}
	if filter.Keyword != "" {
		keyword := "%" + filter.Keyword + "%"
		db = db.Where("name LIKE ? OR sku_no LIKE ?", keyword, keyword)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	err := db.
		Preload("Skus").
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SKU 列表整体替换：先删后写，避免残留已移除的变体
		if err := tx.Where("goods_id = ?", product.ID).Delete(&model.Sku{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error
	})
}

func (r *productRepository) Delete(ctx context.Context, id int64) (int64, int64, error) {
	var goods, skus int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("goods_id = ?", id).Delete(&model.Sku{})
		if result.Error != nil {
			return result.Error
		}
		skus = result.RowsAffected

		result = tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		goods = result.RowsAffected
		return nil
	})
	return goods, skus, err
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ? OR sub_category_id = ? OR third_category_id = ?",
			categoryID, categoryID, categoryID).
		Count(&count).Error
	return count, err
}

// ==================== SkuRepository SKU 仓库 ====================

// SkuRepository SKU 仓库接口
type SkuRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Sku, error)
	GetByGoodsID(ctx context.Context, goodsID int64) ([]model.Sku, error)
}

type skuRepository struct {
	db *gorm.DB
}

// NewSkuRepository 创建 SKU 仓库
func NewSkuRepository(db *gorm.DB) SkuRepository {
	return &skuRepository{db: db}
}

func (r *skuRepository) GetByID(ctx context.Context, id int64) (*model.Sku, error) {
	var sku model.Sku
	err := r.db.WithContext(ctx).First(&sku, id).Error
	if err != nil {
		return nil, err
	}
	return &sku, nil
}

func (r *skuRepository) GetByGoodsID(ctx context.Context, goodsID int64) ([]model.Sku, error) {
	var skus []model.Sku
	err := r.db.WithContext(ctx).Where("goods_id = ?", goodsID).Find(&skus).Error
	return skus, err
}
