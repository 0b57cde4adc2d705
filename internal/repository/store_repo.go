package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// StoreFilter 门店查询条件
type StoreFilter struct {
	Status    string
	SearchVal string // 按门店名称 / 店长姓名 / 电话搜索
	Page      int
	PageSize  int
}

// ==================== StoreRepository 门店仓库 ====================

// StoreRepository 门店仓库接口
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	List(ctx context.Context, filter StoreFilter) ([]model.Store, int64, error)
	Update(ctx context.Context, store *model.Store) error
	ListSettleable(ctx context.Context) ([]model.Store, error)
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository 创建门店仓库
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) List(ctx context.Context, filter StoreFilter) ([]model.Store, int64, error) {
	var stores []model.Store
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Store{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.SearchVal != "" {
		keyword := "%" + filter.SearchVal + "%"
		db = db.Where("name LIKE ? OR manager_name LIKE ? OR phone LIKE ?", keyword, keyword, keyword)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPaging(db, filter.Page, filter.PageSize).
		Order("created_at DESC").
		Find(&stores).Error

	return stores, total, err
}

func (r *storeRepository) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// ListSettleable 列出存在可结算余额的营业中门店（月度结算任务使用）
func (r *storeRepository) ListSettleable(ctx context.Context) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Where("status = ?", model.StoreStatusActive).
		Where("settle_balance > locked_amount").
		Find(&stores).Error
	return stores, err
}
