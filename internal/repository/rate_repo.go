package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== RateRuleRepository 积分规则仓库 ====================

// RateRuleRepository 积分规则仓库接口
type RateRuleRepository interface {
	Create(ctx context.Context, rule *model.RateRule) error
	GetByID(ctx context.Context, id int64) (*model.RateRule, error)
	ListAll(ctx context.Context) ([]model.RateRule, error)
	GetActive(ctx context.Context) (*model.RateRule, error)
	Update(ctx context.Context, rule *model.RateRule) error
	Delete(ctx context.Context, id int64) error
}

type rateRuleRepository struct {
	db *gorm.DB
}

// NewRateRuleRepository 创建积分规则仓库
func NewRateRuleRepository(db *gorm.DB) RateRuleRepository {
	return &rateRuleRepository{db: db}
}

func (r *rateRuleRepository) Create(ctx context.Context, rule *model.RateRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *rateRuleRepository) GetByID(ctx context.Context, id int64) (*model.RateRule, error) {
	var rule model.RateRule
	err := r.db.WithContext(ctx).First(&rule, id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *rateRuleRepository) ListAll(ctx context.Context) ([]model.RateRule, error) {
	var rules []model.RateRule
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rules).Error
	return rules, err
}

// GetActive 取最新一条规则作为生效规则
// 业务上预期只有一条，出现多条时以最近创建的为准
func (r *rateRuleRepository) GetActive(ctx context.Context) (*model.RateRule, error) {
	var rule model.RateRule
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *rateRuleRepository) Update(ctx context.Context, rule *model.RateRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *rateRuleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.RateRule{}, id).Error
}
