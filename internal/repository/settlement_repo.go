package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// SettlementFilter 结算单查询条件
type SettlementFilter struct {
	Status    string
	SearchVal string // 按手机号或结算订单号搜索
	Page      int
	PageSize  int
}

// ==================== SettlementRepository 结算单仓库 ====================

// SettlementRepository 结算单仓库接口
type SettlementRepository interface {
	Create(ctx context.Context, item *model.SettlementItem) error
	GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.SettlementItem, error)
	List(ctx context.Context, filter SettlementFilter) ([]model.SettlementItem, int64, error)
	Update(ctx context.Context, item *model.SettlementItem) error
	HasOpenItem(ctx context.Context, storeID int64) (bool, error)
}

type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository 创建结算单仓库
func NewSettlementRepository(db *gorm.DB) SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) Create(ctx context.Context, item *model.SettlementItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *settlementRepository) GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.SettlementItem, error) {
	var item model.SettlementItem
	err := r.db.WithContext(ctx).Where("out_trade_no = ?", outTradeNo).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *settlementRepository) List(ctx context.Context, filter SettlementFilter) ([]model.SettlementItem, int64, error) {
	var items []model.SettlementItem
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SettlementItem{})

	if filter.Status != "" && filter.Status != "ALL" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.SearchVal != "" {
		keyword := "%" + filter.SearchVal + "%"
		db = db.Where("mobile LIKE ? OR out_trade_no LIKE ?", keyword, keyword)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPaging(db, filter.Page, filter.PageSize).
		Order("created_at DESC").
		Find(&items).Error

	return items, total, err
}

func (r *settlementRepository) Update(ctx context.Context, item *model.SettlementItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// HasOpenItem 门店是否存在未完成的结算单（PENDING 或 FAILED）
func (r *settlementRepository) HasOpenItem(ctx context.Context, storeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SettlementItem{}).
		Where("store_id = ?", storeID).
		Where("status IN ?", []string{model.SettlementStatusPending, model.SettlementStatusFailed}).
		Count(&count).Error
	return count > 0, err
}
