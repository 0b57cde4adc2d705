package model

import (
	"time"
)

// ==================== 会员订单状态常量 ====================

// VipOrderStatus 会员订单状态
// 会员订单没有实体发货环节：SHIPPED 表示"已同步支付方后台订单"，
// 管理端不得为该变体展示快递物流界面
const (
	VipOrderStatusPending   = "PENDING"
	VipOrderStatusPaid      = "PAID"
	VipOrderStatusShipped   = "SHIPPED" // 支付方订单同步完成
	VipOrderStatusCompleted = "COMPLETED"
	VipOrderStatusCancelled = "CANCELLED"
	VipOrderStatusRefunding = "REFUNDING"
	VipOrderStatusRefunded  = "REFUNDED"
)

// vipOrderTransitions 会员订单状态转移表
var vipOrderTransitions = map[string][]string{
	VipOrderStatusPending:   {VipOrderStatusPaid, VipOrderStatusCancelled},
	VipOrderStatusPaid:      {VipOrderStatusShipped, VipOrderStatusCancelled, VipOrderStatusRefunding},
	VipOrderStatusShipped:   {VipOrderStatusCompleted, VipOrderStatusRefunding},
	VipOrderStatusRefunding: {VipOrderStatusRefunded},
}

// VipOrderCanAdvance 目标状态是否为当前状态的合法出边
func VipOrderCanAdvance(from, to string) bool {
	return statusReachable(vipOrderTransitions, from, to)
}

// ==================== VipOrder 会员订单 ====================

// VipOrder 会员订单
type VipOrder struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OutTradeNo    string `gorm:"uniqueIndex;size:64;not null"` // 业务订单号，VIP 开头
	TransactionID string `gorm:"size:64;index"`
	OpenID        string `gorm:"size:64"`

	Status string `gorm:"size:16;index;default:PENDING"`

	UserID     string `gorm:"size:64;index"`
	UserMobile string `gorm:"size:20;index"`

	// 购买的会员产品快照
	VipProID     int64  `gorm:"index"`
	VipLevel     int    `gorm:"default:0"`
	VipLevelText string `gorm:"size:64"`
	Discount     int    `gorm:"default:10"` // 折扣，10 表示无折扣
	Limit        int    `gorm:"default:0"`  // 每月免费次数
	MaxUsers     int    `gorm:"default:1"`  // 可共享家庭成员数
	Term         string `gorm:"size:32"`

	// 金额（分为单位存储）
	TotalPrice    int64
	DeductAmount  int64
	ActualPayment int64
	UsedScore     int64

	// 各状态到达时间
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	SyncedAt    *time.Time // 支付方订单同步时间
	CompletedAt *time.Time
	CancelledAt *time.Time
}

func (*VipOrder) TableName() string {
	return "vip_orders"
}

// GetTotalPrice 获取订单金额（元）
func (o *VipOrder) GetTotalPrice() float64 {
	return float64(o.TotalPrice) / 100
}

// CanAdvance 是否允许转移到目标状态
func (o *VipOrder) CanAdvance(target string) bool {
	return VipOrderCanAdvance(o.Status, target)
}
