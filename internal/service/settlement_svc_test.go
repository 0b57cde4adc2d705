package service

import (
	"context"
	"strings"
	"testing"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupSettlementSvcTest(t *testing.T) (*SettlementService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.SettlementItem{}, &model.Store{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	svc := NewSettlementService(db,
		repository.NewSettlementRepository(db),
		repository.NewStoreRepository(db))
	return svc, db
}

func seedSettleStore(t *testing.T, db *gorm.DB, storeNo string, settleBalance, lockedAmount int64) *model.Store {
	store := &model.Store{
		StoreNo:       storeNo,
		Name:          "测试门店" + storeNo,
		ManagerID:     "mgr-" + storeNo,
		Phone:         "13800000000",
		Status:        model.StoreStatusActive,
		SettleBalance: settleBalance,
		LockedAmount:  lockedAmount,
	}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("插入门店失败: %v", err)
	}
	return store
}

func seedSettlementItem(t *testing.T, db *gorm.DB, storeID int64, outTradeNo, status string, should int64) *model.SettlementItem {
	item := &model.SettlementItem{
		OutTradeNo:             outTradeNo,
		UserID:                 "mgr-x",
		StoreID:                storeID,
		ShouldSettlementAmount: should,
		Status:                 status,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("插入结算单失败: %v", err)
	}
	return item
}

// ==================== 打款确认 ====================

func TestReconcileSuccessReleasesLockAndDeductsBalance(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	// 待结算 10000，冻结 10000；实际打款 9500
	store := seedSettleStore(t, db, "ST01", 10000, 10000)
	seedSettlementItem(t, db, store.ID, "SET001", model.SettlementStatusPending, 10000)

	result, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo:   "SET001",
		Success:      true,
		ActualAmount: 9500,
		ReceiptFiles: "https://cdn.example.com/receipt.png",
	})
	if err != nil {
		t.Fatalf("打款确认失败: %v", err)
	}
	if result.LockedAmount != 0 {
		t.Fatalf("冻结金额应清零, got %d", result.LockedAmount)
	}
	if result.SettleBalance != 500 {
		t.Fatalf("待结算余额应扣至 500, got %d", result.SettleBalance)
	}

	item, _ := svc.Get(ctx, "SET001")
	if item.Status != model.SettlementStatusCompleted {
		t.Fatalf("确认后状态应为 COMPLETED, got %s", item.Status)
	}
	if item.ActualSettlementAmount != 9500 {
		t.Fatalf("实际结算金额应记为 9500, got %d", item.ActualSettlementAmount)
	}
	if item.SettledAt == nil {
		t.Fatal("结算时间未记录")
	}
}

func TestReconcileRejectsAmountOverShould(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	store := seedSettleStore(t, db, "ST02", 10000, 10000)
	seedSettlementItem(t, db, store.ID, "SET002", model.SettlementStatusPending, 10000)

	_, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo:   "SET002",
		Success:      true,
		ActualAmount: 10001,
	})
	if !IsValidationError(err) {
		t.Fatalf("超出待结算金额应报参数校验错误, got: %v", err)
	}

	// 拒绝后结算单与门店余额均不变化
	item, _ := svc.Get(ctx, "SET002")
	if item.Status != model.SettlementStatusPending {
		t.Fatalf("拒绝后状态应保持 PENDING, got %s", item.Status)
	}
	var got model.Store
	db.First(&got, store.ID)
	if got.LockedAmount != 10000 || got.SettleBalance != 10000 {
		t.Fatalf("拒绝后余额不应变化: locked=%d settle=%d", got.LockedAmount, got.SettleBalance)
	}
}

func TestReconcileFailedThenRetry(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	store := seedSettleStore(t, db, "ST03", 8000, 8000)
	seedSettlementItem(t, db, store.ID, "SET003", model.SettlementStatusPending, 8000)

	// 打款失败只批注原因，冻结保持
	result, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo: "SET003",
		Success:    false,
		Remark:     "银行卡信息有误",
	})
	if err != nil {
		t.Fatalf("标记失败出错: %v", err)
	}
	if result.LockedAmount != 8000 {
		t.Fatalf("失败后冻结不应释放, got %d", result.LockedAmount)
	}
	item, _ := svc.Get(ctx, "SET003")
	if item.Status != model.SettlementStatusFailed {
		t.Fatalf("状态应为 FAILED, got %s", item.Status)
	}
	if item.Remark != "银行卡信息有误" {
		t.Fatalf("失败原因未批注: %q", item.Remark)
	}

	// FAILED 状态允许重新打款
	if _, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo:   "SET003",
		Success:      true,
		ActualAmount: 8000,
	}); err != nil {
		t.Fatalf("失败后重试打款出错: %v", err)
	}
	item, _ = svc.Get(ctx, "SET003")
	if item.Status != model.SettlementStatusCompleted {
		t.Fatalf("重试后状态应为 COMPLETED, got %s", item.Status)
	}
}

func TestReconcileCompletedIsTerminal(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	store := seedSettleStore(t, db, "ST04", 5000, 5000)
	seedSettlementItem(t, db, store.ID, "SET004", model.SettlementStatusCompleted, 5000)

	if _, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo:   "SET004",
		Success:      true,
		ActualAmount: 5000,
	}); !IsInvalidTransitionError(err) {
		t.Fatalf("已完成结算单重复确认应报状态转移错误, got: %v", err)
	}
	if _, err := svc.Reconcile(ctx, ReconcileInput{
		OutTradeNo: "SET004",
		Success:    false,
	}); !IsInvalidTransitionError(err) {
		t.Fatalf("已完成结算单标记失败应报状态转移错误, got: %v", err)
	}
}

// ==================== 月度结算单生成 ====================

func TestCreateMonthlyItemsLocksBalance(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	store := seedSettleStore(t, db, "ST05", 20000, 0)

	created, err := svc.CreateMonthlyItems(ctx)
	if err != nil {
		t.Fatalf("批量创建失败: %v", err)
	}
	if created != 1 {
		t.Fatalf("应创建 1 单, got %d", created)
	}

	var item model.SettlementItem
	if err := db.Where("store_id = ?", store.ID).First(&item).Error; err != nil {
		t.Fatalf("查询结算单失败: %v", err)
	}
	if item.ShouldSettlementAmount != 20000 {
		t.Fatalf("待结算金额应为 20000, got %d", item.ShouldSettlementAmount)
	}
	if item.Status != model.SettlementStatusPending {
		t.Fatalf("新建结算单应为 PENDING, got %s", item.Status)
	}
	if !strings.HasPrefix(item.OutTradeNo, "SET") {
		t.Fatalf("结算订单号应以 SET 开头: %s", item.OutTradeNo)
	}

	var got model.Store
	db.First(&got, store.ID)
	if got.LockedAmount != 20000 {
		t.Fatalf("创建时应冻结 20000, got %d", got.LockedAmount)
	}
}

func TestCreateMonthlyItemsSkipsOpenItems(t *testing.T) {
	svc, db := setupSettlementSvcTest(t)
	ctx := context.Background()

	withOpen := seedSettleStore(t, db, "ST06", 10000, 0)
	seedSettlementItem(t, db, withOpen.ID, "SET006", model.SettlementStatusPending, 3000)
	seedSettleStore(t, db, "ST07", 6000, 0)

	created, err := svc.CreateMonthlyItems(ctx)
	if err != nil {
		t.Fatalf("批量创建失败: %v", err)
	}
	// 有未完成结算单的门店跳过，只为干净门店创建
	if created != 1 {
		t.Fatalf("应只创建 1 单, got %d", created)
	}

	var count int64
	db.Model(&model.SettlementItem{}).Where("store_id = ?", withOpen.ID).Count(&count)
	if count != 1 {
		t.Fatalf("有未完成结算单的门店不应新建, got %d 单", count)
	}
}
