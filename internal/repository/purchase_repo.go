package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== PurchaseOrderRepository 进货单仓库 ====================

// PurchaseOrderRepository 店长进货单仓库接口
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]model.PurchaseOrder, int64, error)
	Update(ctx context.Context, order *model.PurchaseOrder) error
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository 创建进货单仓库
func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepository) GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("out_trade_no = ?", outTradeNo).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *purchaseOrderRepository) List(ctx context.Context, filter OrderFilter) ([]model.PurchaseOrder, int64, error) {
	var orders []model.PurchaseOrder
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PurchaseOrder{})

	if filter.Status != "" && filter.Status != "ALL" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.StoreID > 0 {
		db = db.Where("store_id = ?", filter.StoreID)
	}
	if filter.SearchVal != "" {
		keyword := "%" + filter.SearchVal + "%"
		db = db.Where("out_trade_no LIKE ? OR user_mobile LIKE ?", keyword, keyword)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPaging(db, filter.Page, filter.PageSize).
		Preload("Products").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, order *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}
