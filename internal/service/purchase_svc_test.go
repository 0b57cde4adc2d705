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

func setupPurchaseSvcTest(t *testing.T) (*PurchaseOrderService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.PurchaseOrder{}, &model.PurchaseOrderProduct{},
		&model.StoreInventory{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return NewPurchaseOrderService(db, repository.NewPurchaseOrderRepository(db)), db
}

func seedPurchaseOrder(t *testing.T, db *gorm.DB, outTradeNo, status string, lines []model.PurchaseOrderProduct) *model.PurchaseOrder {
	order := &model.PurchaseOrder{
		OutTradeNo: outTradeNo,
		Status:     status,
		StoreID:    1,
		Products:   lines,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("插入进货单失败: %v", err)
	}
	return order
}

func seedStock(t *testing.T, db *gorm.DB, storeID, productID, skuID, unitCount int64) {
	row := &model.StoreInventory{
		StoreID:   storeID,
		ProductID: productID,
		SkuID:     skuID,
		UnitCount: unitCount,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("插入库存行失败: %v", err)
	}
}

func stockOf(t *testing.T, db *gorm.DB, storeID, productID, skuID int64) int64 {
	var row model.StoreInventory
	if err := db.Where("store_id = ? AND product_id = ? AND sku_id = ?",
		storeID, productID, skuID).First(&row).Error; err != nil {
		t.Fatalf("查询库存行失败: %v", err)
	}
	return row.UnitCount
}

// ==================== 取货扣库存 ====================

func TestPickupDeductsBaseUnits(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	// 2 盒 × 每盒 5 片 = 扣 10 片
	seedStock(t, db, 1, 100, 0, 30)
	seedPurchaseOrder(t, db, "STORE001", model.PurchaseOrderStatusShipped,
		[]model.PurchaseOrderProduct{
			{ProductID: 100, Name: "测试商品", Quantity: 2, UnitCount: 5},
		})

	if err := svc.Pickup(ctx, "STORE001"); err != nil {
		t.Fatalf("取货失败: %v", err)
	}

	if got := stockOf(t, db, 1, 100, 0); got != 20 {
		t.Fatalf("库存应扣到 20, got %d", got)
	}
	order, _ := svc.Get(ctx, "STORE001")
	if order.Status != model.PurchaseOrderStatusCompleted {
		t.Fatalf("取货后状态应为 COMPLETED, got %s", order.Status)
	}
	if order.CompletedAt == nil {
		t.Fatal("完成时间未记录")
	}
}

func TestPickupInsufficientStockFailsWholeOrder(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	// 第一行充足，第二行需要 5 只有 3：整单失败，两行库存都不变
	seedStock(t, db, 1, 100, 0, 100)
	seedStock(t, db, 1, 200, 0, 3)
	seedPurchaseOrder(t, db, "STORE002", model.PurchaseOrderStatusShipped,
		[]model.PurchaseOrderProduct{
			{ProductID: 100, Name: "充足商品", Quantity: 1, UnitCount: 1},
			{ProductID: 200, Name: "短缺商品", Quantity: 5, UnitCount: 1},
		})

	err := svc.Pickup(ctx, "STORE002")
	if err == nil {
		t.Fatal("库存不足应整单失败")
	}

	if got := stockOf(t, db, 1, 100, 0); got != 100 {
		t.Fatalf("充足行库存不应被扣减, got %d", got)
	}
	if got := stockOf(t, db, 1, 200, 0); got != 3 {
		t.Fatalf("短缺行库存不应变化, got %d", got)
	}
	order, _ := svc.Get(ctx, "STORE002")
	if order.Status != model.PurchaseOrderStatusShipped {
		t.Fatalf("失败后订单状态应保持 SHIPPED, got %s", order.Status)
	}
}

func TestPickupMergesDuplicateLines(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	// 同一商品出现两行，各需 3：合计 6 超过库存 5，整单失败
	seedStock(t, db, 1, 100, 0, 5)
	seedPurchaseOrder(t, db, "STORE007", model.PurchaseOrderStatusShipped,
		[]model.PurchaseOrderProduct{
			{ProductID: 100, Name: "重复商品", Quantity: 3, UnitCount: 1},
			{ProductID: 100, Name: "重复商品", Quantity: 3, UnitCount: 1},
		})

	if err := svc.Pickup(ctx, "STORE007"); err == nil {
		t.Fatal("累计需求超库存应整单失败")
	}
	if got := stockOf(t, db, 1, 100, 0); got != 5 {
		t.Fatalf("失败后库存不应变化, got %d", got)
	}
	order, _ := svc.Get(ctx, "STORE007")
	if order.Status != model.PurchaseOrderStatusShipped {
		t.Fatalf("失败后订单状态应保持 SHIPPED, got %s", order.Status)
	}

	// 库存恰好够合计需求时两行都扣掉
	seedStock(t, db, 1, 200, 0, 6)
	seedPurchaseOrder(t, db, "STORE008", model.PurchaseOrderStatusShipped,
		[]model.PurchaseOrderProduct{
			{ProductID: 200, Name: "凑单商品", Quantity: 3, UnitCount: 1},
			{ProductID: 200, Name: "凑单商品", Quantity: 3, UnitCount: 1},
		})
	if err := svc.Pickup(ctx, "STORE008"); err != nil {
		t.Fatalf("库存恰好够时取货失败: %v", err)
	}
	if got := stockOf(t, db, 1, 200, 0); got != 0 {
		t.Fatalf("两行应合并扣减到 0, got %d", got)
	}
}

func TestPickupRequiresShippedStatus(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	seedStock(t, db, 1, 100, 0, 10)
	seedPurchaseOrder(t, db, "STORE003", model.PurchaseOrderStatusPaid,
		[]model.PurchaseOrderProduct{
			{ProductID: 100, Name: "测试商品", Quantity: 1, UnitCount: 1},
		})

	if err := svc.Pickup(ctx, "STORE003"); !IsInvalidTransitionError(err) {
		t.Fatalf("PAID 状态取货应报状态转移错误, got: %v", err)
	}
	if got := stockOf(t, db, 1, 100, 0); got != 10 {
		t.Fatalf("库存不应变化, got %d", got)
	}
}

func TestPickupMissingStockRow(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	// 门店没有该商品的库存记录
	seedPurchaseOrder(t, db, "STORE004", model.PurchaseOrderStatusShipped,
		[]model.PurchaseOrderProduct{
			{ProductID: 999, Name: "未入库商品", Quantity: 1, UnitCount: 1},
		})

	if err := svc.Pickup(ctx, "STORE004"); err == nil {
		t.Fatal("缺少库存记录应失败")
	}
}

// ==================== 发货与取消 ====================

func TestPurchaseShipAndCancel(t *testing.T) {
	svc, db := setupPurchaseSvcTest(t)
	ctx := context.Background()

	seedPurchaseOrder(t, db, "STORE005", model.PurchaseOrderStatusPaid, nil)
	if err := svc.Ship(ctx, "STORE005"); err != nil {
		t.Fatalf("发货失败: %v", err)
	}
	order, _ := svc.Get(ctx, "STORE005")
	if order.Status != model.PurchaseOrderStatusShipped {
		t.Fatalf("发货后状态应为 SHIPPED, got %s", order.Status)
	}

	// 已发货的进货单不允许取消
	if err := svc.Cancel(ctx, "STORE005", "不要了"); !IsInvalidTransitionError(err) {
		t.Fatalf("SHIPPED 取消应报状态转移错误, got: %v", err)
	}

	seedPurchaseOrder(t, db, "STORE006", model.PurchaseOrderStatusPaid, nil)
	if err := svc.Cancel(ctx, "STORE006", "重复下单"); err != nil {
		t.Fatalf("取消失败: %v", err)
	}
	cancelled, _ := svc.Get(ctx, "STORE006")
	if cancelled.Status != model.PurchaseOrderStatusCancelled {
		t.Fatalf("取消后状态应为 CANCELLED, got %s", cancelled.Status)
	}
	if cancelled.Remark != "重复下单" {
		t.Fatalf("取消原因未批注: %q", cancelled.Remark)
	}
}
