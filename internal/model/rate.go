package model

import (
	"time"
)

// MaxUsePercentCeiling 积分抵扣比例的领域硬上限
// 无论调用方传入什么，超过 20% 一律拒绝，这是规则校验的铁律而非提示
const MaxUsePercentCeiling = 0.2

// ==================== RateRule 积分规则 ====================

// RateRule 积分规则配置
// 业务上预期同时只有一条生效规则；新增规则不会自动下线旧规则，
// 下线旧规则是调用方的职责
type RateRule struct {
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// 返积分比例：消费金额按此比例返积分，如 0.1 即 10%
	EarnRate float64 `gorm:"not null"`

	// 积分抵扣换算率：积分与人民币的换算比例，默认 1:1
	UseRate float64 `gorm:"not null;default:1"`

	// 单笔订单积分最大可抵扣比例，硬上限 0.2
	MaxUsePercent float64 `gorm:"not null"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (*RateRule) TableName() string {
	return "rate_rules"
}
