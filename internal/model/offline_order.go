package model

import (
	"time"
)

// ==================== 线下订单状态常量 ====================

// OfflineOrderStatus 线下门店订单状态
// 前置状态由门店端在服务侧维护，管理端只观察两个终态
const (
	OfflineOrderStatusCompleted = "COMPLETED"
	OfflineOrderStatusCancelled = "CANCELLED"
)

// ==================== OfflineOrder 线下订单 ====================

// OfflineOrder 线下门店订单（管理端只读）
type OfflineOrder struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OutTradeNo    string `gorm:"uniqueIndex;size:64;not null"`
	TransactionID string `gorm:"size:64;index"`

	Status string `gorm:"size:16;index"`

	StoreID   int64  `gorm:"index;not null"`
	StoreName string `gorm:"size:128"`

	UserID     string `gorm:"size:64;index"`
	UserMobile string `gorm:"size:20;index"`

	// 金额（分为单位存储）
	TotalPrice    int64
	DeductAmount  int64
	ActualPayment int64
	UsedScore     int64

	ItemDesc string `gorm:"size:255"` // 消费内容说明，如"贴膜服务*1"
	Remark   string `gorm:"type:text"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

func (*OfflineOrder) TableName() string {
	return "offline_orders"
}

// GetActualPayment 获取实付金额（元）
func (o *OfflineOrder) GetActualPayment() float64 {
	return float64(o.ActualPayment) / 100
}
