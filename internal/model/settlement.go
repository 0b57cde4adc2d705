package model

import (
	"time"
)

// ==================== 结算单状态常量 ====================

// SettlementStatus 结算单状态
// 状态单调推进：COMPLETED 为终态，不存在 COMPLETED -> PENDING 回退；
// FAILED 的打款可以重试，因此允许 FAILED -> COMPLETED
const (
	SettlementStatusPending   = "PENDING"
	SettlementStatusCompleted = "COMPLETED"
	SettlementStatusFailed    = "FAILED"
)

// settlementTransitions 结算单状态转移表
var settlementTransitions = map[string][]string{
	SettlementStatusPending: {SettlementStatusCompleted, SettlementStatusFailed},
	SettlementStatusFailed:  {SettlementStatusCompleted},
}

// SettlementCanAdvance 目标状态是否为当前状态的合法出边
func SettlementCanAdvance(from, to string) bool {
	return statusReachable(settlementTransitions, from, to)
}

// ==================== SettlementItem 结算单 ====================

// SettlementItem 店长结算单
// 默认每月10号由定时任务批量创建，创建时冻结对应的待结算余额
type SettlementItem struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	OutTradeNo string `gorm:"uniqueIndex;size:64;not null"` // 平台结算订单号，SET 开头

	UserID  string `gorm:"size:64;index;not null"`
	Mobile  string `gorm:"size:20;index"`
	StoreID int64  `gorm:"index;not null"`

	// 金额（分为单位存储），实际结算金额恒 <= 待结算金额
	ShouldSettlementAmount int64 `gorm:"not null"`
	ActualSettlementAmount int64 `gorm:"default:0"`

	Status       string `gorm:"size:16;index;default:PENDING"`
	Remark       string `gorm:"type:text"`
	ReceiptFiles string `gorm:"size:1000"` // 结算凭证文件URL

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
	SettledAt *time.Time
}

func (*SettlementItem) TableName() string {
	return "settlement_items"
}

// GetShouldAmount 获取待结算金额（元）
func (s *SettlementItem) GetShouldAmount() float64 {
	return float64(s.ShouldSettlementAmount) / 100
}

// GetActualAmount 获取实际结算金额（元）
func (s *SettlementItem) GetActualAmount() float64 {
	return float64(s.ActualSettlementAmount) / 100
}

// CanAdvance 是否允许转移到目标状态
func (s *SettlementItem) CanAdvance(target string) bool {
	return SettlementCanAdvance(s.Status, target)
}
