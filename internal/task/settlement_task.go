package task

import (
	"context"
	"log"
	"time"

	"mall_admin_server/internal/service"

	"github.com/robfig/cron/v3"
)

// ==================== SettlementTask 月度结算任务 ====================

// SettlementTask 定时为可结算门店批量生成结算单
// 默认每月10号凌晨2点执行，生成与冻结在同一事务内提交
type SettlementTask struct {
	settlementSvc *service.SettlementService
	spec          string
	cron          *cron.Cron
}

// NewSettlementTask 创建结算任务
func NewSettlementTask(settlementSvc *service.SettlementService, spec string) *SettlementTask {
	if spec == "" {
		spec = "0 0 2 10 * *"
	}
	return &SettlementTask{
		settlementSvc: settlementSvc,
		spec:          spec,
		cron:          cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *SettlementTask) Start() {
	_, err := t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		t.execute(ctx)
	})
	if err != nil {
		log.Fatalf("[SettlementTask] 无法启动定时任务: %v", err)
	}

	t.cron.Start()
	log.Printf("[SettlementTask] 月度结算任务已启动 (%s)", t.spec)
}

// Stop 停止任务
func (t *SettlementTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[SettlementTask] 已停止")
}

// RunOnce 手动触发一次结算单生成
func (t *SettlementTask) RunOnce(ctx context.Context) (int, error) {
	return t.settlementSvc.CreateMonthlyItems(ctx)
}

// execute 执行一次任务
func (t *SettlementTask) execute(ctx context.Context) {
	created, err := t.settlementSvc.CreateMonthlyItems(ctx)
	if err != nil {
		log.Printf("[SettlementTask] 生成结算单失败: %v", err)
		return
	}
	if created > 0 {
		log.Printf("[SettlementTask] 本次生成 %d 张结算单", created)
	}
}
