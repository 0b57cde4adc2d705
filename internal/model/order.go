package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== 商品订单状态常量 ====================

// ProductOrderStatus 商品订单状态
// 各订单变体的状态各自独立定义，字面值相同也不混用
const (
	ProductOrderStatusPending   = "PENDING"   // 待支付
	ProductOrderStatusPaid      = "PAID"      // 已支付
	ProductOrderStatusShipped   = "SHIPPED"   // 已发货
	ProductOrderStatusCompleted = "COMPLETED" // 已完成
	ProductOrderStatusCancelled = "CANCELLED" // 已取消
	ProductOrderStatusRefunding = "REFUNDING" // 退款中
	ProductOrderStatusRefunded  = "REFUNDED"  // 已退款
)

// productOrderTransitions 商品订单状态转移表
// COMPLETED / CANCELLED / REFUNDED 为终态
var productOrderTransitions = map[string][]string{
	ProductOrderStatusPending:   {ProductOrderStatusPaid, ProductOrderStatusCancelled},
	ProductOrderStatusPaid:      {ProductOrderStatusShipped, ProductOrderStatusCancelled, ProductOrderStatusRefunding},
	ProductOrderStatusShipped:   {ProductOrderStatusCompleted, ProductOrderStatusRefunding},
	ProductOrderStatusRefunding: {ProductOrderStatusRefunded},
}

// ProductOrderCanAdvance 目标状态是否为当前状态的合法出边
func ProductOrderCanAdvance(from, to string) bool {
	return statusReachable(productOrderTransitions, from, to)
}

func statusReachable(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ==================== 物流类型常量 ====================

// LogisticsType 发货方式
const (
	LogisticsTypeExpress = 1 // 实体物流配送（快递公司）
	LogisticsTypeCity    = 2 // 同城配送
	LogisticsTypeVirtual = 3 // 虚拟商品，无实体配送
	LogisticsTypePickup  = 4 // 用户自提
)

// ==================== ProductOrder 商品订单 ====================

// ProductOrder 商品订单主表
// 订单创建后只会被转移或批注（取消原因、退款原因），永不删除
type ProductOrder struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OutTradeNo    string `gorm:"uniqueIndex;size:64;not null"` // 业务订单号，PRO 开头
	TransactionID string `gorm:"size:64;index"`                // 支付方交易单号
	OpenID        string `gorm:"size:64"`

	Status string `gorm:"size:16;index;default:PENDING"`

	// 下单用户快照
	UserID       string `gorm:"size:64;index"`
	UserNickname string `gorm:"size:64"`
	UserMobile   string `gorm:"size:20;index"`

	// 收货地址快照
	AddressInfo datatypes.JSONMap `gorm:"type:jsonb"`

	// 金额（分为单位存储）
	TotalPrice    int64 // 商品总金额
	DeductAmount  int64 // 积分抵扣金额，恒 <= TotalPrice * maxUsePercent
	ActualPayment int64 // 实付金额 = TotalPrice - DeductAmount
	UsedScore     int64 // 使用的积分数

	TotalCount    int    `gorm:"default:0"`
	PaymentMethod string `gorm:"size:16"`
	Remark        string `gorm:"type:text"`
	CancelReason  string `gorm:"type:text"`

	// 物流信息
	LogisticsType  int    `gorm:"default:0"`
	ExpressCompany string `gorm:"size:32"`
	TrackingNo     string `gorm:"size:128"`
	ItemDesc       string `gorm:"size:255"`

	// 各状态到达时间
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
	RefundedAt  *time.Time

	// 关联
	Products []OrderProduct `gorm:"foreignKey:OrderID"`
}

func (*ProductOrder) TableName() string {
	return "product_orders"
}

// GetTotalPrice 获取商品总金额（元）
func (o *ProductOrder) GetTotalPrice() float64 {
	return float64(o.TotalPrice) / 100
}

// GetDeductAmount 获取抵扣金额（元）
func (o *ProductOrder) GetDeductAmount() float64 {
	return float64(o.DeductAmount) / 100
}

// GetActualPayment 获取实付金额（元）
func (o *ProductOrder) GetActualPayment() float64 {
	return float64(o.ActualPayment) / 100
}

// CanAdvance 是否允许转移到目标状态
func (o *ProductOrder) CanAdvance(target string) bool {
	return ProductOrderCanAdvance(o.Status, target)
}

// IsTerminal 是否处于终态
func (o *ProductOrder) IsTerminal() bool {
	return len(productOrderTransitions[o.Status]) == 0
}

// NeedLogistics 发货时是否必须携带物流信息
// 虚拟商品与用户自提无实体配送，物流字段可为空
func NeedLogistics(logisticsType int) bool {
	return logisticsType != LogisticsTypeVirtual && logisticsType != LogisticsTypePickup
}

// ==================== OrderProduct 订单商品行 ====================

// OrderProduct 订单中的商品行项
type OrderProduct struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"index;not null"`
	ProductID int64  `gorm:"index;not null"`
	SkuID     int64  `gorm:"index"` // 0 表示无 SKU 商品
	SkuNo     string `gorm:"size:64"`
	Name      string `gorm:"size:255"`
	Cover     string `gorm:"size:500"`

	// 金额（分为单位存储）
	OriginalPrice int64
	CurrentPrice  int64

	Quantity int `gorm:"default:1"`

	// 下单时的 SKU 规格快照
	SkuAttrs datatypes.JSONMap `gorm:"type:jsonb"`

	// 基础单位换算系数快照（取货扣减库存时使用）
	UnitCount int64 `gorm:"default:1"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (*OrderProduct) TableName() string {
	return "order_products"
}

// GetCurrentPrice 获取成交单价（元）
func (p *OrderProduct) GetCurrentPrice() float64 {
	return float64(p.CurrentPrice) / 100
}

// BaseUnits 该行折算成基础单位的数量
func (p *OrderProduct) BaseUnits() int64 {
	unit := p.UnitCount
	if unit <= 0 {
		unit = 1
	}
	return int64(p.Quantity) * unit
}
