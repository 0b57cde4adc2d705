package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/gorm"
)

// ==================== InventoryService 库存套餐服务 ====================

// InventoryService 库存套餐与门店库存服务
// 套餐激活跨门店与库存台账两张表，持有 db 开启事务
type InventoryService struct {
	db          *gorm.DB
	packageRepo repository.InventoryPackageRepository
	stockRepo   repository.StoreInventoryRepository
	skuRepo     repository.SkuRepository
	productRepo repository.ProductRepository
}

// NewInventoryService 创建库存服务
func NewInventoryService(
	db *gorm.DB,
	packageRepo repository.InventoryPackageRepository,
	stockRepo repository.StoreInventoryRepository,
	skuRepo repository.SkuRepository,
	productRepo repository.ProductRepository,
) *InventoryService {
	return &InventoryService{
		db:          db,
		packageRepo: packageRepo,
		stockRepo:   stockRepo,
		skuRepo:     skuRepo,
		productRepo: productRepo,
	}
}

// ==================== 套餐管理 ====================

// validatePackage 套餐创建/更新校验
func validatePackage(pkg *model.InventoryPackage) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return NewValidationError("name", "套餐名称不能为空")
	}
	if len(pkg.Items) == 0 {
		return NewValidationError("items", "套餐至少包含一条商品配置")
	}
	for _, item := range pkg.Items {
		if item.ProductID <= 0 {
			return NewValidationError("items.productId", "套餐商品id不能为空")
		}
		if item.Quantity <= 0 {
			return NewValidationError("items.quantity", "初始化数量必须大于0")
		}
		if item.UnitCount < 0 {
			return NewValidationError("items.unitCount", "单位换算系数不能为负数")
		}
	}
	return nil
}

// CreatePackage 新增套餐
func (s *InventoryService) CreatePackage(ctx context.Context, pkg *model.InventoryPackage) error {
	if err := validatePackage(pkg); err != nil {
		return err
	}
	if pkg.Status == "" {
		pkg.Status = model.InventoryPackageEnable
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return fmt.Errorf("创建套餐失败: %w", err)
	}
	return nil
}

// GetPackage 查询套餐详情（含商品行）
func (s *InventoryService) GetPackage(ctx context.Context, id int64) (*model.InventoryPackage, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "套餐不存在")
		}
		return nil, err
	}
	return pkg, nil
}

// ListPackages 查询全部套餐
func (s *InventoryService) ListPackages(ctx context.Context) ([]model.InventoryPackage, error) {
	return s.packageRepo.ListAll(ctx)
}

// PackageItemRow 套餐商品行及商品快照（仅展示用）
type PackageItemRow struct {
	model.InventoryItem
	ProductName string `json:"productName"`
	SkuCode     string `json:"skuCode"`
}

// PackageDetail 套餐详情及展示字段
type PackageDetail struct {
	model.InventoryPackage
	ItemRows []PackageItemRow `json:"itemRows"`
}

// GetPackageDetail 查询套餐详情，商品行补充商品名称与SKU编码
func (s *InventoryService) GetPackageDetail(ctx context.Context, id int64) (*PackageDetail, error) {
	pkg, err := s.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &PackageDetail{InventoryPackage: *pkg}
	detail.ItemRows = make([]PackageItemRow, 0, len(pkg.Items))
	for _, item := range pkg.Items {
		row := PackageItemRow{InventoryItem: item}
		if p, err := s.productRepo.GetByID(ctx, item.ProductID); err == nil {
			row.ProductName = p.Name
		}
		if item.SkuID > 0 {
			if sku, err := s.skuRepo.GetByID(ctx, item.SkuID); err == nil {
				row.SkuCode = sku.SkuCode
			}
		}
		detail.ItemRows = append(detail.ItemRows, row)
	}
	return detail, nil
}

// PackageProductRow 套餐商品行解析出的商品快照
// 行字段沿用小程序端的下划线风格，商品快照字段为展示用途
type PackageProductRow struct {
	ProductID int64 `json:"product_id"`
	SkuID     int64 `json:"sku_id,omitempty"`
	Quantity  int64 `json:"quantity"`
	UnitCount int64 `json:"unit_count,omitempty"`

	Name         string     `json:"name"`
	SkuNo        string     `json:"skuNo"`
	Cover        string     `json:"cover"`
	CurrentPrice int64      `json:"currentPrice"`
	Sku          *model.Sku `json:"skus,omitempty"`
}

// ResolveItemProducts 按调用方提交的商品行批量拉取商品快照
// 配置套餐时前端用它回显商品名称、货号与价格；
// 引用了不存在的商品或SKU直接报错
func (s *InventoryService) ResolveItemProducts(ctx context.Context, items []model.InventoryItem) ([]PackageProductRow, error) {
	rows := make([]PackageProductRow, 0, len(items))
	for _, item := range items {
		p, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewBusinessError(404, fmt.Sprintf("商品 %d 不存在", item.ProductID))
			}
			return nil, err
		}

		row := PackageProductRow{
			ProductID:    item.ProductID,
			SkuID:        item.SkuID,
			Quantity:     item.Quantity,
			UnitCount:    item.UnitCount,
			Name:         p.Name,
			SkuNo:        p.SkuNo,
			Cover:        p.Cover,
			CurrentPrice: p.CurrentPrice,
		}
		if item.SkuID > 0 {
			sku, err := s.skuRepo.GetByID(ctx, item.SkuID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, NewBusinessError(404, fmt.Sprintf("SKU %d 不存在", item.SkuID))
				}
				return nil, err
			}
			row.Sku = sku
			row.CurrentPrice = sku.Price
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdatePackage 更新套餐（商品行整体替换）
// 套餐内容变更不回溯已初始化的门店
func (s *InventoryService) UpdatePackage(ctx context.Context, pkg *model.InventoryPackage) error {
	if pkg.ID <= 0 {
		return NewValidationError("id", "套餐id不能为空")
	}
	if err := validatePackage(pkg); err != nil {
		return err
	}
	if _, err := s.GetPackage(ctx, pkg.ID); err != nil {
		return err
	}
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return fmt.Errorf("更新套餐失败: %w", err)
	}
	return nil
}

// SetPackageStatus 启用/停用套餐
// 停用只拦截新的激活，不影响已初始化的门店
func (s *InventoryService) SetPackageStatus(ctx context.Context, id int64, status string) error {
	if status != model.InventoryPackageEnable && status != model.InventoryPackageDisable {
		return NewValidationError("status", "无效的套餐状态")
	}
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packageRepo.UpdateStatus(ctx, id, status)
}

// DeletePackage 删除套餐
func (s *InventoryService) DeletePackage(ctx context.Context, id int64) error {
	if _, err := s.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.packageRepo.Delete(ctx, id)
}

// ==================== 套餐激活 ====================

// resolveUnitCount 一条套餐商品行的基础单位换算系数
// 优先级：行覆写 > SKU 配置 > 1
func (s *InventoryService) resolveUnitCount(ctx context.Context, item model.InventoryItem) int64 {
	if item.UnitCount > 0 {
		return item.UnitCount
	}
	if item.SkuID > 0 {
		if sku, err := s.skuRepo.GetByID(ctx, item.SkuID); err == nil {
			return sku.BaseUnitCount()
		}
	}
	return 1
}

// Activate 向门店下发套餐初始库存
// 门店库存状态机 UNINITIALIZED -> INITIALIZED，只允许激活一次；
// 每条商品行按 quantity * unitCount 折算基础单位并累加到门店台账
func (s *InventoryService) Activate(ctx context.Context, storeID, packageID int64) error {
	pkg, err := s.GetPackage(ctx, packageID)
	if err != nil {
		return err
	}
	if !pkg.IsEnabled() {
		return NewBusinessError(400, "套餐已停用，无法激活")
	}

	// 折算在事务外完成，事务内只做读改写
	deltas := make([]int64, len(pkg.Items))
	for i, item := range pkg.Items {
		deltas[i] = item.Quantity * s.resolveUnitCount(ctx, item)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store model.Store
		if err := tx.First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewBusinessError(404, "门店不存在")
			}
			return err
		}
		if !store.CanActivateInventory() {
			return NewInvalidTransitionError("门店库存", store.InventoryState, model.StoreInventoryInitialized)
		}

		for i, item := range pkg.Items {
			var row model.StoreInventory
			err := tx.Where("store_id = ? AND product_id = ? AND sku_id = ?",
				storeID, item.ProductID, item.SkuID).
				First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = model.StoreInventory{
					StoreID:   storeID,
					ProductID: item.ProductID,
					SkuID:     item.SkuID,
					UnitCount: deltas[i],
				}
			case err != nil:
				return err
			default:
				row.UnitCount += deltas[i]
			}
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("写入门店库存失败: %w", err)
			}
		}

		store.InventoryState = model.StoreInventoryInitialized
		store.InventoryPackageID = packageID
		if err := tx.Save(&store).Error; err != nil {
			return fmt.Errorf("更新门店库存状态失败: %w", err)
		}
		return nil
	})
}

// ==================== 门店库存 ====================

// StockRow 门店库存行及商品快照
type StockRow struct {
	model.StoreInventory
	ProductName string `json:"productName"`
	SkuCode     string `json:"skuCode"`
}

// StoreStock 查询门店库存台账，补充商品名称
func (s *InventoryService) StoreStock(ctx context.Context, storeID int64) ([]StockRow, error) {
	rows, err := s.stockRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("查询门店库存失败: %w", err)
	}

	result := make([]StockRow, 0, len(rows))
	for _, row := range rows {
		sr := StockRow{StoreInventory: row}
		if p, err := s.productRepo.GetByID(ctx, row.ProductID); err == nil {
			sr.ProductName = p.Name
		}
		if row.SkuID > 0 {
			if sku, err := s.skuRepo.GetByID(ctx, row.SkuID); err == nil {
				sr.SkuCode = sku.SkuCode
			}
		}
		result = append(result, sr)
	}
	return result, nil
}

// AdjustStock 手动调整门店库存（基础单位）
// 负向调整导致库存为负时整体拒绝
func (s *InventoryService) AdjustStock(ctx context.Context, storeID, productID, skuID, delta int64) error {
	row, err := s.stockRepo.GetRow(ctx, storeID, productID, skuID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if delta < 0 {
			return NewBusinessError(400, "库存记录不存在，无法扣减")
		}
		return s.stockRepo.Save(ctx, &model.StoreInventory{
			StoreID:   storeID,
			ProductID: productID,
			SkuID:     skuID,
			UnitCount: delta,
			UpdatedAt: time.Now(),
		})
	}

	if row.UnitCount+delta < 0 {
		return NewBusinessError(400,
			fmt.Sprintf("库存不足：当前 %d，调整 %d", row.UnitCount, delta))
	}
	row.UnitCount += delta
	return s.stockRepo.Save(ctx, row)
}
