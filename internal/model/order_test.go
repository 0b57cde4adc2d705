package model

import "testing"

// ==================== 商品订单状态机 ====================

func TestProductOrderTransitions(t *testing.T) {
	allowed := [][2]string{
		{ProductOrderStatusPending, ProductOrderStatusPaid},
		{ProductOrderStatusPending, ProductOrderStatusCancelled},
		{ProductOrderStatusPaid, ProductOrderStatusShipped},
		{ProductOrderStatusPaid, ProductOrderStatusCancelled},
		{ProductOrderStatusPaid, ProductOrderStatusRefunding},
		{ProductOrderStatusShipped, ProductOrderStatusCompleted},
		{ProductOrderStatusShipped, ProductOrderStatusRefunding},
		{ProductOrderStatusRefunding, ProductOrderStatusRefunded},
	}
	for _, tr := range allowed {
		if !ProductOrderCanAdvance(tr[0], tr[1]) {
			t.Errorf("应允许 %s -> %s", tr[0], tr[1])
		}
	}

	denied := [][2]string{
		{ProductOrderStatusPending, ProductOrderStatusShipped},
		{ProductOrderStatusPending, ProductOrderStatusCompleted},
		{ProductOrderStatusShipped, ProductOrderStatusCancelled},
		{ProductOrderStatusCompleted, ProductOrderStatusRefunding},
		{ProductOrderStatusCancelled, ProductOrderStatusPaid},
		{ProductOrderStatusRefunded, ProductOrderStatusPending},
		{ProductOrderStatusRefunding, ProductOrderStatusCompleted},
	}
	for _, tr := range denied {
		if ProductOrderCanAdvance(tr[0], tr[1]) {
			t.Errorf("不应允许 %s -> %s", tr[0], tr[1])
		}
	}
}

func TestProductOrderTerminalStates(t *testing.T) {
	for _, status := range []string{
		ProductOrderStatusCompleted,
		ProductOrderStatusCancelled,
		ProductOrderStatusRefunded,
	} {
		o := &ProductOrder{Status: status}
		if !o.IsTerminal() {
			t.Errorf("%s 应为终态", status)
		}
	}

	o := &ProductOrder{Status: ProductOrderStatusShipped}
	if o.IsTerminal() {
		t.Error("SHIPPED 不应为终态")
	}
}

// ==================== 会员订单状态机 ====================

func TestVipOrderTransitions(t *testing.T) {
	if !VipOrderCanAdvance(VipOrderStatusPaid, VipOrderStatusShipped) {
		t.Error("会员订单应允许 PAID -> SHIPPED")
	}
	if VipOrderCanAdvance(VipOrderStatusShipped, VipOrderStatusCancelled) {
		t.Error("会员订单不应允许 SHIPPED -> CANCELLED")
	}
	if VipOrderCanAdvance(VipOrderStatusCompleted, VipOrderStatusRefunding) {
		t.Error("终态不应有出边")
	}
}

// ==================== 进货单状态机 ====================

func TestPurchaseOrderTransitions(t *testing.T) {
	if !PurchaseOrderCanAdvance(PurchaseOrderStatusPaid, PurchaseOrderStatusShipped) {
		t.Error("进货单应允许 PAID -> SHIPPED")
	}
	if !PurchaseOrderCanAdvance(PurchaseOrderStatusPaid, PurchaseOrderStatusCancelled) {
		t.Error("进货单应允许 PAID -> CANCELLED")
	}
	if !PurchaseOrderCanAdvance(PurchaseOrderStatusShipped, PurchaseOrderStatusCompleted) {
		t.Error("进货单应允许 SHIPPED -> COMPLETED")
	}
	// 取消仅在 PAID 状态允许
	if PurchaseOrderCanAdvance(PurchaseOrderStatusShipped, PurchaseOrderStatusCancelled) {
		t.Error("进货单不应允许 SHIPPED -> CANCELLED")
	}
	if PurchaseOrderCanAdvance(PurchaseOrderStatusCompleted, PurchaseOrderStatusCancelled) {
		t.Error("进货单不应允许 COMPLETED -> CANCELLED")
	}
}

// ==================== 结算单状态机 ====================

func TestSettlementTransitions(t *testing.T) {
	if !SettlementCanAdvance(SettlementStatusPending, SettlementStatusCompleted) {
		t.Error("应允许 PENDING -> COMPLETED")
	}
	if !SettlementCanAdvance(SettlementStatusPending, SettlementStatusFailed) {
		t.Error("应允许 PENDING -> FAILED")
	}
	// 打款失败允许重试
	if !SettlementCanAdvance(SettlementStatusFailed, SettlementStatusCompleted) {
		t.Error("应允许 FAILED -> COMPLETED")
	}
	// 状态单调，不允许回退
	if SettlementCanAdvance(SettlementStatusCompleted, SettlementStatusPending) {
		t.Error("不应允许 COMPLETED -> PENDING")
	}
	if SettlementCanAdvance(SettlementStatusCompleted, SettlementStatusFailed) {
		t.Error("不应允许 COMPLETED -> FAILED")
	}
}

// ==================== 物流 & 单位换算 ====================

func TestNeedLogistics(t *testing.T) {
	if !NeedLogistics(LogisticsTypeExpress) {
		t.Error("快递发货必须携带物流信息")
	}
	if !NeedLogistics(LogisticsTypeCity) {
		t.Error("同城配送必须携带物流信息")
	}
	if NeedLogistics(LogisticsTypeVirtual) {
		t.Error("虚拟商品不需要物流信息")
	}
	if NeedLogistics(LogisticsTypePickup) {
		t.Error("用户自提不需要物流信息")
	}
}

func TestOrderProductBaseUnits(t *testing.T) {
	// 2 盒 × 每盒 5 片 = 10 片
	p := &OrderProduct{Quantity: 2, UnitCount: 5}
	if got := p.BaseUnits(); got != 10 {
		t.Fatalf("BaseUnits: got %d, want 10", got)
	}

	// 未配置换算系数时按 1 处理
	p = &OrderProduct{Quantity: 3, UnitCount: 0}
	if got := p.BaseUnits(); got != 3 {
		t.Fatalf("BaseUnits 缺省系数: got %d, want 3", got)
	}
}

func TestSkuBaseUnitCount(t *testing.T) {
	s := &Sku{UnitCount: 0}
	if s.BaseUnitCount() != 1 {
		t.Error("未配置换算系数应回退到 1")
	}
	s = &Sku{UnitCount: 12}
	if s.BaseUnitCount() != 12 {
		t.Error("已配置换算系数应原样返回")
	}
}
