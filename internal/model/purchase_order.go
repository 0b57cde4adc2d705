package model

import (
	"time"
)

// ==================== 进货订单状态常量 ====================

// PurchaseOrderStatus 店长进货单状态
// 进货单由店长小程序下单产生，管理端从 PAID 开始观察
const (
	PurchaseOrderStatusPaid      = "PAID"      // 已提交
	PurchaseOrderStatusShipped   = "SHIPPED"   // 已发货
	PurchaseOrderStatusCompleted = "COMPLETED" // 已完成（取货）
	PurchaseOrderStatusCancelled = "CANCELLED" // 已取消
)

// purchaseOrderTransitions 进货单状态转移表
// 转移到 COMPLETED（取货）必须与门店库存扣减在同一事务内提交
var purchaseOrderTransitions = map[string][]string{
	PurchaseOrderStatusPaid:    {PurchaseOrderStatusShipped, PurchaseOrderStatusCancelled},
	PurchaseOrderStatusShipped: {PurchaseOrderStatusCompleted},
}

// PurchaseOrderCanAdvance 目标状态是否为当前状态的合法出边
func PurchaseOrderCanAdvance(from, to string) bool {
	return statusReachable(purchaseOrderTransitions, from, to)
}

// ==================== PurchaseOrder 进货订单 ====================

// PurchaseOrder 店长进货单
type PurchaseOrder struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	OutTradeNo    string `gorm:"uniqueIndex;size:64;not null"` // 业务订单号，STORE 开头
	TransactionID string `gorm:"size:64;index"`
	OpenID        string `gorm:"size:64"`

	Status string `gorm:"size:16;index;default:PAID"`

	// 进货店长
	UserID       string `gorm:"size:64;index"`
	UserNickname string `gorm:"size:64"`
	UserMobile   string `gorm:"size:20;index"`
	StoreID      int64  `gorm:"index;not null"` // 取货扣减库存的目标门店

	// 金额（分为单位存储）
	TotalPrice    int64
	DeductAmount  int64
	ActualPayment int64
	UsedScore     int64

	TotalCount int    `gorm:"default:0"`
	Remark     string `gorm:"type:text"`

	// 各状态到达时间
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ShippedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time

	// 关联：复用订单商品行结构
	Products []PurchaseOrderProduct `gorm:"foreignKey:OrderID"`
}

func (*PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// GetActualPayment 获取实付金额（元）
func (o *PurchaseOrder) GetActualPayment() float64 {
	return float64(o.ActualPayment) / 100
}

// CanAdvance 是否允许转移到目标状态
func (o *PurchaseOrder) CanAdvance(target string) bool {
	return PurchaseOrderCanAdvance(o.Status, target)
}

// ==================== PurchaseOrderProduct 进货单商品行 ====================

// PurchaseOrderProduct 进货单中的商品行项
type PurchaseOrderProduct struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"index;not null"`
	ProductID int64  `gorm:"index;not null"`
	SkuID     int64  `gorm:"index"`
	Name      string `gorm:"size:255"`

	// 金额（分为单位存储）
	CurrentPrice int64

	Quantity int `gorm:"default:1"`

	// 基础单位换算系数快照
	UnitCount int64 `gorm:"default:1"`

	CreatedAt time.Time
}

func (*PurchaseOrderProduct) TableName() string {
	return "purchase_order_products"
}

// BaseUnits 该行折算成基础单位的数量
func (p *PurchaseOrderProduct) BaseUnits() int64 {
	unit := p.UnitCount
	if unit <= 0 {
		unit = 1
	}
	return int64(p.Quantity) * unit
}
