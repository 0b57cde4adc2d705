package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== InventoryPackageRepository 库存套餐仓库 ====================

// InventoryPackageRepository 库存套餐仓库接口
type InventoryPackageRepository interface {
	Create(ctx context.Context, pkg *model.InventoryPackage) error
	GetByID(ctx context.Context, id int64) (*model.InventoryPackage, error)
	ListAll(ctx context.Context) ([]model.InventoryPackage, error)
	Update(ctx context.Context, pkg *model.InventoryPackage) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type inventoryPackageRepository struct {
	db *gorm.DB
}

// NewInventoryPackageRepository 创建库存套餐仓库
func NewInventoryPackageRepository(db *gorm.DB) InventoryPackageRepository {
	return &inventoryPackageRepository{db: db}
}

func (r *inventoryPackageRepository) Create(ctx context.Context, pkg *model.InventoryPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *inventoryPackageRepository) GetByID(ctx context.Context, id int64) (*model.InventoryPackage, error) {
	var pkg model.InventoryPackage
	err := r.db.WithContext(ctx).Preload("Items").First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *inventoryPackageRepository) ListAll(ctx context.Context) ([]model.InventoryPackage, error) {
	var pkgs []model.InventoryPackage
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&pkgs).Error
	return pkgs, err
}

func (r *inventoryPackageRepository) Update(ctx context.Context, pkg *model.InventoryPackage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 套餐商品行整体替换
		if err := tx.Where("package_id = ?", pkg.ID).Delete(&model.InventoryItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(pkg).Error
	})
}

func (r *inventoryPackageRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&model.InventoryPackage{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *inventoryPackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&model.InventoryItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.InventoryPackage{}, id).Error
	})
}

// ==================== StoreInventoryRepository 门店库存仓库 ====================

// StoreInventoryRepository 门店库存台账仓库接口
type StoreInventoryRepository interface {
	GetRow(ctx context.Context, storeID, productID, skuID int64) (*model.StoreInventory, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.StoreInventory, error)
	Save(ctx context.Context, row *model.StoreInventory) error
}

type storeInventoryRepository struct {
	db *gorm.DB
}

// NewStoreInventoryRepository 创建门店库存仓库
func NewStoreInventoryRepository(db *gorm.DB) StoreInventoryRepository {
	return &storeInventoryRepository{db: db}
}

func (r *storeInventoryRepository) GetRow(ctx context.Context, storeID, productID, skuID int64) (*model.StoreInventory, error) {
	var row model.StoreInventory
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ? AND sku_id = ?", storeID, productID, skuID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *storeInventoryRepository) ListByStore(ctx context.Context, storeID int64) ([]model.StoreInventory, error) {
	var rows []model.StoreInventory
	err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&rows).Error
	return rows, err
}

func (r *storeInventoryRepository) Save(ctx context.Context, row *model.StoreInventory) error {
	return r.db.WithContext(ctx).Save(row).Error
}
