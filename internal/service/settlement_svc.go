package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ==================== SettlementService 结算服务 ====================

// SettlementService 店长结算服务
// 打款确认跨结算单与门店余额两张表，持有 db 开启事务
type SettlementService struct {
	db             *gorm.DB
	settlementRepo repository.SettlementRepository
	storeRepo      repository.StoreRepository
}

// NewSettlementService 创建结算服务
func NewSettlementService(
	db *gorm.DB,
	settlementRepo repository.SettlementRepository,
	storeRepo repository.StoreRepository,
) *SettlementService {
	return &SettlementService{
		db:             db,
		settlementRepo: settlementRepo,
		storeRepo:      storeRepo,
	}
}

// newSettlementNo 生成平台结算订单号
func newSettlementNo() string {
	return "SET" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

// ==================== 查询 ====================

// List 分页查询结算单
func (s *SettlementService) List(ctx context.Context, filter repository.SettlementFilter) ([]model.SettlementItem, int64, error) {
	return s.settlementRepo.List(ctx, filter)
}

// ListPending 查询待处理结算单
func (s *SettlementService) ListPending(ctx context.Context, page, pageSize int) ([]model.SettlementItem, int64, error) {
	return s.settlementRepo.List(ctx, repository.SettlementFilter{
		Status:   model.SettlementStatusPending,
		Page:     page,
		PageSize: pageSize,
	})
}

// Get 按结算订单号查询结算单
func (s *SettlementService) Get(ctx context.Context, outTradeNo string) (*model.SettlementItem, error) {
	item, err := s.settlementRepo.GetByOutTradeNo(ctx, outTradeNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "结算单不存在")
		}
		return nil, err
	}
	return item, nil
}

// ==================== 打款确认 ====================

// ReconcileInput 打款确认参数
type ReconcileInput struct {
	OutTradeNo   string
	Success      bool
	ActualAmount int64 // 分，成功时必填
	ReceiptFiles string
	Remark       string
}

// ReconcileResult 打款确认后门店的余额快照
type ReconcileResult struct {
	SettleBalance int64 `json:"settle_balance"`
	LockedAmount  int64 `json:"lockedAmount"`
}

// Reconcile 结算单打款确认
// 成功：PENDING/FAILED -> COMPLETED，同一事务内释放冻结并扣减待结算余额；
// 失败：PENDING -> FAILED，仅批注失败原因，冻结与余额保持不变，等待重试
func (s *SettlementService) Reconcile(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	if !in.Success {
		return s.markFailed(ctx, in)
	}
	return s.markCompleted(ctx, in)
}

func (s *SettlementService) markFailed(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	item, err := s.Get(ctx, in.OutTradeNo)
	if err != nil {
		return nil, err
	}
	if !item.CanAdvance(model.SettlementStatusFailed) {
		return nil, NewInvalidTransitionError("结算单", item.Status, model.SettlementStatusFailed)
	}
	item.Status = model.SettlementStatusFailed
	item.Remark = in.Remark
	if err := s.settlementRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("更新结算单失败: %w", err)
	}

	store, err := s.storeRepo.GetByID(ctx, item.StoreID)
	if err != nil {
		return nil, err
	}
	return &ReconcileResult{
		SettleBalance: store.SettleBalance,
		LockedAmount:  store.LockedAmount,
	}, nil
}

func (s *SettlementService) markCompleted(ctx context.Context, in ReconcileInput) (*ReconcileResult, error) {
	if in.ActualAmount < 0 {
		return nil, NewValidationError("actualAmount", "结算金额不能为负数")
	}

	var result ReconcileResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.SettlementItem
		if err := tx.Where("out_trade_no = ?", in.OutTradeNo).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewBusinessError(404, "结算单不存在")
			}
			return err
		}
		if !item.CanAdvance(model.SettlementStatusCompleted) {
			return NewInvalidTransitionError("结算单", item.Status, model.SettlementStatusCompleted)
		}
		// 实际结算金额不允许超过待结算金额
		if in.ActualAmount > item.ShouldSettlementAmount {
			return NewValidationError("actualAmount",
				fmt.Sprintf("结算金额 %d 超过待结算金额 %d", in.ActualAmount, item.ShouldSettlementAmount))
		}

		var store model.Store
		if err := tx.First(&store, item.StoreID).Error; err != nil {
			return err
		}

		now := time.Now()
		item.Status = model.SettlementStatusCompleted
		item.ActualSettlementAmount = in.ActualAmount
		item.ReceiptFiles = in.ReceiptFiles
		item.Remark = in.Remark
		item.SettledAt = &now
		if err := tx.Save(&item).Error; err != nil {
			return fmt.Errorf("更新结算单失败: %w", err)
		}

		// 释放创建时的冻结，并按实际打款扣减待结算余额
		store.LockedAmount -= item.ShouldSettlementAmount
		if store.LockedAmount < 0 {
			store.LockedAmount = 0
		}
		store.SettleBalance -= in.ActualAmount
		if err := tx.Save(&store).Error; err != nil {
			return fmt.Errorf("更新门店余额失败: %w", err)
		}

		result.SettleBalance = store.SettleBalance
		result.LockedAmount = store.LockedAmount
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ==================== 结算单生成 ====================

// CreateMonthlyItems 为全部可结算门店批量创建结算单
// 创建与冻结在同一事务内提交；存在未完成结算单的门店跳过，
// 返回本次创建的结算单数量
func (s *SettlementService) CreateMonthlyItems(ctx context.Context) (int, error) {
	stores, err := s.storeRepo.ListSettleable(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询可结算门店失败: %w", err)
	}

	created := 0
	for _, store := range stores {
		open, err := s.settlementRepo.HasOpenItem(ctx, store.ID)
		if err != nil {
			return created, err
		}
		if open {
			zap.S().Infof("门店 %d 存在未完成结算单，跳过", store.ID)
			continue
		}

		amount := store.AvailableSettleBalance()
		if amount <= 0 {
			continue
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			item := &model.SettlementItem{
				OutTradeNo:             newSettlementNo(),
				UserID:                 store.ManagerID,
				Mobile:                 store.Phone,
				StoreID:                store.ID,
				ShouldSettlementAmount: amount,
				Status:                 model.SettlementStatusPending,
			}
			if err := tx.Create(item).Error; err != nil {
				return err
			}
			// 冻结本期结算金额
			return tx.Model(&model.Store{}).
				Where("id = ?", store.ID).
				Update("locked_amount", gorm.Expr("locked_amount + ?", amount)).Error
		})
		if err != nil {
			return created, fmt.Errorf("创建门店 %d 结算单失败: %w", store.ID, err)
		}
		created++
	}
	return created, nil
}
