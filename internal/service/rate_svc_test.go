package service

import (
	"testing"

	"mall_admin_server/internal/model"
)

// ==================== 规则校验 ====================

func TestRateValidate(t *testing.T) {
	svc := NewRateRuleService(nil)

	cases := []struct {
		name          string
		earnRate      float64
		useRate       float64
		maxUsePercent float64
		wantErr       bool
	}{
		{"合法规则", 0.1, 1, 0.2, false},
		{"上限边界值", 0.1, 1, 0.2, false},
		{"抵扣比例为零", 0.1, 1, 0, false},
		{"超过硬上限", 0.1, 1, 0.21, true},
		{"远超硬上限", 0.1, 1, 0.5, true},
		{"返积分比例为负", -0.1, 1, 0.1, true},
		{"换算率为负", 0.1, -1, 0.1, true},
		{"抵扣比例为负", 0.1, 1, -0.1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Validate(tc.earnRate, tc.useRate, tc.maxUsePercent)
			if tc.wantErr && err == nil {
				t.Fatalf("预期拒绝但通过了: earn=%v use=%v max=%v", tc.earnRate, tc.useRate, tc.maxUsePercent)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("预期通过但被拒绝: %v", err)
			}
		})
	}
}

func TestRateValidateErrorNamesField(t *testing.T) {
	svc := NewRateRuleService(nil)
	err := svc.Validate(0.1, 1, 0.3)
	if !IsValidationError(err) {
		t.Fatalf("预期校验错误，实际: %T", err)
	}
}

// ==================== 抵扣计算 ====================

func TestApplyDeductionClampsToCeiling(t *testing.T) {
	svc := NewRateRuleService(nil)
	rule := &model.RateRule{EarnRate: 0.1, UseRate: 1, MaxUsePercent: 0.2}

	// 订单 100 元（10000 分），上限 20 元
	// 积分 5000 按 1:1 折算 5000 分（50 元），必须钳制到 2000 分
	got := svc.ApplyDeduction(rule, 10000, 5000)
	if got != 2000 {
		t.Fatalf("超额抵扣未钳制: got %d, want 2000", got)
	}

	// 未达上限时按积分折算
	got = svc.ApplyDeduction(rule, 10000, 1500)
	if got != 1500 {
		t.Fatalf("正常抵扣计算错误: got %d, want 1500", got)
	}
}

func TestApplyDeductionNeverExceedsCeilingLaw(t *testing.T) {
	svc := NewRateRuleService(nil)
	rule := &model.RateRule{UseRate: 1, MaxUsePercent: 0.2}

	// 任意积分输入，抵扣都不超过 totalPrice * maxUsePercent
	totalPrice := int64(33333)
	ceiling := int64(6666) // 33333 * 0.2 = 6666.6，截断到分
	for _, score := range []int64{0, 1, 100, 6666, 6667, 100000, 1 << 40} {
		got := svc.ApplyDeduction(rule, totalPrice, score)
		if got > ceiling {
			t.Fatalf("usedScore=%d 抵扣 %d 超过上限 %d", score, got, ceiling)
		}
	}
}

func TestApplyDeductionZeroInputs(t *testing.T) {
	svc := NewRateRuleService(nil)
	rule := &model.RateRule{UseRate: 1, MaxUsePercent: 0.2}

	if got := svc.ApplyDeduction(nil, 10000, 100); got != 0 {
		t.Fatalf("nil 规则应返回 0, got %d", got)
	}
	if got := svc.ApplyDeduction(rule, 10000, 0); got != 0 {
		t.Fatalf("零积分应返回 0, got %d", got)
	}
	if got := svc.ApplyDeduction(rule, 0, 100); got != 0 {
		t.Fatalf("零金额应返回 0, got %d", got)
	}
}

func TestApplyDeductionTruncatesFraction(t *testing.T) {
	svc := NewRateRuleService(nil)
	// 换算率 0.33：100 积分 = 33 分，尾数截断
	rule := &model.RateRule{UseRate: 0.33, MaxUsePercent: 0.2}
	if got := svc.ApplyDeduction(rule, 100000, 100); got != 33 {
		t.Fatalf("尾数应截断: got %d, want 33", got)
	}
}
