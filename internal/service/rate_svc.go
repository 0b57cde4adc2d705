package service

import (
	"context"
	"fmt"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"github.com/shopspring/decimal"
)

// ==================== RateRuleService 积分规则服务 ====================

// RateRuleService 积分规则服务
// 规则校验与单笔抵扣刻意采用不同的失败策略：
// 越界的规则配置直接拒绝，而单笔超额抵扣请求收敛到允许上限
// （前端持有过期规则属于正常竞态，需要优雅降级而不是报错）
type RateRuleService struct {
	rateRepo repository.RateRuleRepository
}

// NewRateRuleService 创建积分规则服务
func NewRateRuleService(rateRepo repository.RateRuleRepository) *RateRuleService {
	return &RateRuleService{rateRepo: rateRepo}
}

// ==================== 规则校验 ====================

// Validate 校验积分规则
// 拒绝条件：maxUsePercent > 0.2 或任一比率为负，0.2 是领域硬上限
func (s *RateRuleService) Validate(earnRate, useRate, maxUsePercent float64) error {
	if earnRate < 0 {
		return NewValidationError("earnRate", "返积分比例不能为负数")
	}
	if useRate < 0 {
		return NewValidationError("useRate", "积分换算率不能为负数")
	}
	if maxUsePercent < 0 {
		return NewValidationError("maxUsePercent", "抵扣比例不能为负数")
	}
	if maxUsePercent > model.MaxUsePercentCeiling {
		return NewValidationError("maxUsePercent", "抵扣比例不可超过20%")
	}
	return nil
}

// ==================== 抵扣计算 ====================

// ApplyDeduction 计算单笔订单的积分抵扣金额（分）
// deductAmount = min(usedScore × useRate, totalPrice × maxUsePercent)
// 永远钳制到上限而不报错，分以下的尾数直接截断
func (s *RateRuleService) ApplyDeduction(rule *model.RateRule, totalPrice int64, usedScore int64) int64 {
	if rule == nil || usedScore <= 0 || totalPrice <= 0 {
		return 0
	}

	// 积分按换算率折算的金额
	byScore := decimal.NewFromInt(usedScore).
		Mul(decimal.NewFromFloat(rule.UseRate))

	// 订单总额允许抵扣的上限
	byCeiling := decimal.NewFromInt(totalPrice).
		Mul(decimal.NewFromFloat(rule.MaxUsePercent))

	deduct := decimal.Min(byScore, byCeiling)
	if deduct.IsNegative() {
		return 0
	}
	return deduct.IntPart()
}

// ==================== 规则管理 ====================

// Create 新增积分规则
// 新增不会自动下线旧规则，下线旧规则是调用方的职责
func (s *RateRuleService) Create(ctx context.Context, earnRate, useRate, maxUsePercent float64) (*model.RateRule, error) {
	if err := s.Validate(earnRate, useRate, maxUsePercent); err != nil {
		return nil, err
	}

	rule := &model.RateRule{
		EarnRate:      earnRate,
		UseRate:       useRate,
		MaxUsePercent: maxUsePercent,
	}
	if err := s.rateRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("创建积分规则失败: %w", err)
	}
	return rule, nil
}

// List 获取全部积分规则（业务上预期只有一条）
func (s *RateRuleService) List(ctx context.Context) ([]model.RateRule, error) {
	return s.rateRepo.ListAll(ctx)
}

// Update 更新积分规则
func (s *RateRuleService) Update(ctx context.Context, id int64, earnRate, useRate, maxUsePercent float64) error {
	if err := s.Validate(earnRate, useRate, maxUsePercent); err != nil {
		return err
	}

	rule, err := s.rateRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("积分规则不存在")
	}

	rule.EarnRate = earnRate
	rule.UseRate = useRate
	rule.MaxUsePercent = maxUsePercent
	return s.rateRepo.Update(ctx, rule)
}

// Delete 删除积分规则
func (s *RateRuleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.rateRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("积分规则不存在")
	}
	return s.rateRepo.Delete(ctx, id)
}

// Active 获取当前生效规则
func (s *RateRuleService) Active(ctx context.Context) (*model.RateRule, error) {
	return s.rateRepo.GetActive(ctx)
}
