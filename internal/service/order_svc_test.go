package service

import (
	"context"
	"testing"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupOrderSvcTest(t *testing.T) (*OrderService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.ProductOrder{}, &model.OrderProduct{},
		&model.VipOrder{}, &model.OfflineOrder{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	svc := NewOrderService(
		repository.NewProductOrderRepository(db),
		repository.NewVipOrderRepository(db),
		repository.NewOfflineOrderRepository(db),
		nil, // 不触发支付方同步
	)
	return svc, db
}

func seedProductOrder(t *testing.T, db *gorm.DB, status string) *model.ProductOrder {
	order := &model.ProductOrder{
		OutTradeNo: "PRO" + status + "001",
		Status:     status,
		UserMobile: "13800000000",
		TotalPrice: 10000,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("插入测试订单失败: %v", err)
	}
	return order
}

// ==================== 发货校验 ====================

func TestSendGoodsTrackingNoFormat(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()

	// 带空格的单号必须被拒绝
	order := seedProductOrder(t, db, model.ProductOrderStatusPaid)
	err := svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:     order.OutTradeNo,
		LogisticsType:  model.LogisticsTypeExpress,
		ExpressCompany: "顺丰速运",
		TrackingNo:     "SF 123",
	})
	if !IsValidationError(err) {
		t.Fatalf("含空格的快递单号应被拒绝, got: %v", err)
	}

	// 合法单号放行
	err = svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:     order.OutTradeNo,
		LogisticsType:  model.LogisticsTypeExpress,
		ExpressCompany: "顺丰速运",
		TrackingNo:     "SF123-456",
	})
	if err != nil {
		t.Fatalf("合法发货被拒绝: %v", err)
	}

	got, _ := svc.GetProductOrder(ctx, order.OutTradeNo)
	if got.Status != model.ProductOrderStatusShipped {
		t.Fatalf("发货后状态应为 SHIPPED, got %s", got.Status)
	}
	if got.ShippedAt == nil {
		t.Fatal("发货时间未记录")
	}
}

func TestSendGoodsRequiresLogisticsFields(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()
	order := seedProductOrder(t, db, model.ProductOrderStatusPaid)

	// 快递公司为空
	err := svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:    order.OutTradeNo,
		LogisticsType: model.LogisticsTypeExpress,
		TrackingNo:    "SF123",
	})
	if !IsValidationError(err) {
		t.Fatalf("缺快递公司应被拒绝, got: %v", err)
	}

	// 超长单号
	long := make([]byte, 129)
	for i := range long {
		long[i] = 'A'
	}
	err = svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:     order.OutTradeNo,
		LogisticsType:  model.LogisticsTypeExpress,
		ExpressCompany: "顺丰速运",
		TrackingNo:     string(long),
	})
	if !IsValidationError(err) {
		t.Fatalf("超长快递单号应被拒绝, got: %v", err)
	}
}

func TestSendGoodsVirtualSkipsLogistics(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()
	order := seedProductOrder(t, db, model.ProductOrderStatusPaid)

	// 虚拟商品不校验物流字段
	err := svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:    order.OutTradeNo,
		LogisticsType: model.LogisticsTypeVirtual,
		ItemDesc:      "虚拟会员卡",
	})
	if err != nil {
		t.Fatalf("虚拟商品发货被拒绝: %v", err)
	}
}

func TestSendGoodsGuardsTransition(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()

	// 待支付订单不允许发货
	order := seedProductOrder(t, db, model.ProductOrderStatusPending)
	err := svc.SendGoods(ctx, ShipmentInput{
		OutTradeNo:     order.OutTradeNo,
		LogisticsType:  model.LogisticsTypeExpress,
		ExpressCompany: "顺丰速运",
		TrackingNo:     "SF123",
	})
	if !IsInvalidTransitionError(err) {
		t.Fatalf("PENDING 发货应报状态转移错误, got: %v", err)
	}
}

// ==================== 改址与取消 ====================

func TestEditAddressOnlyBeforeShipment(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()
	addr := map[string]interface{}{"city": "上海", "detail": "某某路1号"}

	paid := seedProductOrder(t, db, model.ProductOrderStatusPaid)
	if err := svc.EditAddress(ctx, paid.OutTradeNo, addr); err != nil {
		t.Fatalf("已支付订单改址被拒绝: %v", err)
	}

	shipped := seedProductOrder(t, db, model.ProductOrderStatusShipped)
	if err := svc.EditAddress(ctx, shipped.OutTradeNo, addr); err == nil {
		t.Fatal("已发货订单不应允许改址")
	}
}

func TestCancelRecordsReason(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()

	order := seedProductOrder(t, db, model.ProductOrderStatusPaid)
	if err := svc.CancelProductOrder(ctx, order.OutTradeNo, "用户主动取消"); err != nil {
		t.Fatalf("取消失败: %v", err)
	}

	got, _ := svc.GetProductOrder(ctx, order.OutTradeNo)
	if got.Status != model.ProductOrderStatusCancelled {
		t.Fatalf("取消后状态应为 CANCELLED, got %s", got.Status)
	}
	if got.CancelReason != "用户主动取消" {
		t.Fatalf("取消原因未批注: %q", got.CancelReason)
	}

	// 已发货订单不允许取消
	shipped := seedProductOrder(t, db, model.ProductOrderStatusShipped)
	if err := svc.CancelProductOrder(ctx, shipped.OutTradeNo, "x"); !IsInvalidTransitionError(err) {
		t.Fatalf("SHIPPED 取消应报状态转移错误, got: %v", err)
	}
}

// ==================== 会员订单 ====================

func TestSendVipGuardsTransition(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()

	vip := &model.VipOrder{
		OutTradeNo: "VIP001",
		Status:     model.VipOrderStatusPaid,
	}
	if err := db.Create(vip).Error; err != nil {
		t.Fatalf("插入会员订单失败: %v", err)
	}

	if err := svc.SendVip(ctx, vip.OutTradeNo); err != nil {
		t.Fatalf("会员订单履约失败: %v", err)
	}
	got, _ := svc.GetVipOrder(ctx, vip.OutTradeNo)
	if got.Status != model.VipOrderStatusShipped {
		t.Fatalf("履约后状态应为 SHIPPED, got %s", got.Status)
	}
	if got.SyncedAt == nil {
		t.Fatal("同步时间未记录")
	}

	// 重复履约被拒
	if err := svc.SendVip(ctx, vip.OutTradeNo); !IsInvalidTransitionError(err) {
		t.Fatalf("重复履约应报状态转移错误, got: %v", err)
	}
}

// ==================== 列表 ====================

func TestListProductOrdersStatusAll(t *testing.T) {
	svc, db := setupOrderSvcTest(t)
	ctx := context.Background()

	seedProductOrder(t, db, model.ProductOrderStatusPaid)
	seedProductOrder(t, db, model.ProductOrderStatusShipped)

	// ALL 查全部
	_, total, err := svc.ListProductOrders(ctx, repository.OrderFilter{Status: "ALL"})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 {
		t.Fatalf("ALL 应查到 2 单, got %d", total)
	}

	// 按状态过滤
	_, total, err = svc.ListProductOrders(ctx, repository.OrderFilter{Status: model.ProductOrderStatusPaid})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 {
		t.Fatalf("PAID 应查到 1 单, got %d", total)
	}
}
