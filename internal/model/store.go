package model

import (
	"time"

	"gorm.io/gorm"
)

// ==================== 门店状态常量 ====================

// StoreStatus 门店营业状态
const (
	StoreStatusActive   = "active"
	StoreStatusInactive = "inactive"
)

// StoreInventoryState 门店库存初始化状态
// 套餐激活是门店实体上的显式状态转移，而不是一个布尔开关：
// UNINITIALIZED -> INITIALIZED，且只允许发生一次
const (
	StoreInventoryUninitialized = "UNINITIALIZED"
	StoreInventoryInitialized   = "INITIALIZED"
)

// ==================== Store 门店 ====================

// Store 门店
type Store struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	StoreNo string `gorm:"uniqueIndex;size:32"` // 门店短编号，用于生成收款码
	Name    string `gorm:"size:128;not null"`
	Address string `gorm:"size:255"`
	Logo    string `gorm:"size:500"`
	Phone   string `gorm:"size:20"`

	// 店长信息
	ManagerID   string `gorm:"size:64;index"`
	ManagerName string `gorm:"size:64"`

	// 层级关系
	ParentStoreID int64 `gorm:"index"`

	Status string `gorm:"size:16;index;default:active"`

	// 资金（分为单位存储）
	OperatingBalance int64 `gorm:"default:0"` // 店长运营资金
	SettleBalance    int64 `gorm:"default:0"` // 待结算余额
	LockedAmount     int64 `gorm:"default:0"` // 结算中冻结金额

	// 库存初始化状态机
	InventoryState     string `gorm:"size:16;default:UNINITIALIZED"`
	InventoryPackageID int64  `gorm:"index"` // 激活时使用的套餐

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (*Store) TableName() string {
	return "stores"
}

// CanActivateInventory 是否允许执行套餐激活
func (s *Store) CanActivateInventory() bool {
	return s.InventoryState == StoreInventoryUninitialized
}

// GetSettleBalance 获取待结算余额（元）
func (s *Store) GetSettleBalance() float64 {
	return float64(s.SettleBalance) / 100
}

// GetLockedAmount 获取冻结金额（元）
func (s *Store) GetLockedAmount() float64 {
	return float64(s.LockedAmount) / 100
}

// AvailableSettleBalance 未被冻结的可结算余额（分）
func (s *Store) AvailableSettleBalance() int64 {
	avail := s.SettleBalance - s.LockedAmount
	if avail < 0 {
		return 0
	}
	return avail
}
