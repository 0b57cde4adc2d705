package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// OrderFilter 订单查询条件，三个订单变体共用
// SearchVal 按业务订单号或用户手机号模糊匹配
type OrderFilter struct {
	Status    string
	SearchVal string
	StoreID   int64
	Page      int
	PageSize  int
}

func applyPaging(db *gorm.DB, page, pageSize int) *gorm.DB {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return db.Limit(pageSize).Offset((page - 1) * pageSize)
}

// ==================== ProductOrderRepository 商品订单仓库 ====================

// ProductOrderRepository 商品订单仓库接口
type ProductOrderRepository interface {
	Create(ctx context.Context, order *model.ProductOrder) error
	GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.ProductOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]model.ProductOrder, int64, error)
	Update(ctx context.Context, order *model.ProductOrder) error
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

type productOrderRepository struct {
	db *gorm.DB
}

// NewProductOrderRepository 创建商品订单仓库
func NewProductOrderRepository(db *gorm.DB) ProductOrderRepository {
	return &productOrderRepository{db: db}
}

func (r *productOrderRepository) Create(ctx context.Context, order *model.ProductOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *productOrderRepository) GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.ProductOrder, error) {
	var order model.ProductOrder
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("out_trade_no = ?", outTradeNo).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *productOrderRepository) List(ctx context.Context, filter OrderFilter) ([]model.ProductOrder, int64, error) {
	var orders []model.ProductOrder
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ProductOrder{})

	if filter.Status != "" && filter.Status != "ALL" {
		db = db.Where("status = ?", filter.Status)
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

func (r *productOrderRepository) Update(ctx context.Context, order *model.ProductOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *productOrderRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.ProductOrder{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productOrderRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := r.db.WithContext(ctx).Model(&model.ProductOrder{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(counts))
	for _, c := range counts {
		result[c.Status] = c.Count
	}
	return result, nil
}

// ==================== VipOrderRepository 会员订单仓库 ====================

// VipOrderRepository 会员订单仓库接口
type VipOrderRepository interface {
	Create(ctx context.Context, order *model.VipOrder) error
	GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.VipOrder, error)
	List(ctx context.Context, filter OrderFilter) ([]model.VipOrder, int64, error)
	Update(ctx context.Context, order *model.VipOrder) error
}

type vipOrderRepository struct {
	db *gorm.DB
}

// NewVipOrderRepository 创建会员订单仓库
func NewVipOrderRepository(db *gorm.DB) VipOrderRepository {
	return &vipOrderRepository{db: db}
}

func (r *vipOrderRepository) Create(ctx context.Context, order *model.VipOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *vipOrderRepository) GetByOutTradeNo(ctx context.Context, outTradeNo string) (*model.VipOrder, error) {
	var order model.VipOrder
	err := r.db.WithContext(ctx).Where("out_trade_no = ?", outTradeNo).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *vipOrderRepository) List(ctx context.Context, filter OrderFilter) ([]model.VipOrder, int64, error) {
	var orders []model.VipOrder
	var total int64

	db := r.db.WithContext(ctx).Model(&model.VipOrder{})

	if filter.Status != "" && filter.Status != "ALL" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.SearchVal != "" {
		keyword := "%" + filter.SearchVal + "%"
		db = db.Where("out_trade_no LIKE ? OR user_mobile LIKE ?", keyword, keyword)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyPaging(db, filter.Page, filter.PageSize).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *vipOrderRepository) Update(ctx context.Context, order *model.VipOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

// ==================== OfflineOrderRepository 线下订单仓库 ====================

// OfflineOrderRepository 线下订单仓库接口（管理端只读）
type OfflineOrderRepository interface {
	List(ctx context.Context, filter OrderFilter) ([]model.OfflineOrder, int64, error)
}

type offlineOrderRepository struct {
	db *gorm.DB
}

// NewOfflineOrderRepository 创建线下订单仓库
func NewOfflineOrderRepository(db *gorm.DB) OfflineOrderRepository {
	return &offlineOrderRepository{db: db}
}

func (r *offlineOrderRepository) List(ctx context.Context, filter OrderFilter) ([]model.OfflineOrder, int64, error) {
	var orders []model.OfflineOrder
	var total int64

	db := r.db.WithContext(ctx).Model(&model.OfflineOrder{})

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
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}
