package model

import (
	"time"

	"gorm.io/gorm"
)

// ==================== 库存套餐状态常量 ====================

// InventoryPackageStatus 套餐启用状态
const (
	InventoryPackageEnable  = "ENABLE"
	InventoryPackageDisable = "DISABLE"
)

// ==================== InventoryPackage 库存套餐 ====================

// InventoryPackage 门店初始库存套餐
// items 中的 quantity 是一次性初始化数量：同一 (套餐, 门店) 只允许下发一次，
// 是否已下发由门店实体的库存初始化状态记账，引擎本身不记忆
type InventoryPackage struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:128;not null"`
	Desc   string `gorm:"type:text"`
	Status string `gorm:"size:16;index;default:ENABLE"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// 关联
	Items []InventoryItem `gorm:"foreignKey:PackageID"`
}

func (*InventoryPackage) TableName() string {
	return "inventory_packages"
}

// IsEnabled 套餐是否可用于门店激活
func (p *InventoryPackage) IsEnabled() bool {
	return p.Status == InventoryPackageEnable
}

// ==================== InventoryItem 套餐商品行 ====================

// InventoryItem 套餐包含的商品初始化配置
type InventoryItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	PackageID int64 `gorm:"index;not null"`
	ProductID int64 `gorm:"index;not null"`
	SkuID     int64 `gorm:"index"` // 0 表示无 SKU 商品

	// 初始化数量（销售单位）
	Quantity int64 `gorm:"not null"`

	// 基础单位换算系数覆写；0 时回退到 SKU 的 unit_count，再回退到 1
	UnitCount int64 `gorm:"default:0"`

	CreatedAt time.Time
}

func (*InventoryItem) TableName() string {
	return "inventory_items"
}

// ==================== StoreInventory 门店库存台账 ====================

// StoreInventory 门店维度的 (商品, SKU) 库存行
// unit_count 恒以基础单位计（如"片"而非"盒"），且恒 >= 0：
// 会导致负数的扣减必须整体拒绝，不允许截断为零
type StoreInventory struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	StoreID   int64 `gorm:"index:idx_store_product,unique;not null"`
	ProductID int64 `gorm:"index:idx_store_product,unique;not null"`
	SkuID     int64 `gorm:"index:idx_store_product,unique"` // 0 表示无 SKU 商品

	// 成本价（分为单位存储）
	CostPrice int64

	// 当前库存（基础单位）
	UnitCount int64 `gorm:"not null;default:0"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (*StoreInventory) TableName() string {
	return "store_inventories"
}

// GetCostPrice 获取成本价（元）
func (i *StoreInventory) GetCostPrice() float64 {
	return float64(i.CostPrice) / 100
}
