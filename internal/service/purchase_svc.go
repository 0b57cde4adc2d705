package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/gorm"
)

// ==================== PurchaseOrderService 进货单服务 ====================

// PurchaseOrderService 店长进货单服务
// 取货（Pickup）跨订单与门店库存两张表，需要直接持有 db 开启事务
type PurchaseOrderService struct {
	db           *gorm.DB
	purchaseRepo repository.PurchaseOrderRepository
}

// NewPurchaseOrderService 创建进货单服务
func NewPurchaseOrderService(db *gorm.DB, purchaseRepo repository.PurchaseOrderRepository) *PurchaseOrderService {
	return &PurchaseOrderService{db: db, purchaseRepo: purchaseRepo}
}

// List 分页查询进货单
func (s *PurchaseOrderService) List(ctx context.Context, filter repository.OrderFilter) ([]model.PurchaseOrder, int64, error) {
	return s.purchaseRepo.List(ctx, filter)
}

// Get 按业务订单号查询进货单
func (s *PurchaseOrderService) Get(ctx context.Context, outTradeNo string) (*model.PurchaseOrder, error) {
	order, err := s.purchaseRepo.GetByOutTradeNo(ctx, outTradeNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "进货单不存在")
		}
		return nil, err
	}
	return order, nil
}

// Ship 进货单发货：PAID -> SHIPPED
func (s *PurchaseOrderService) Ship(ctx context.Context, outTradeNo string) error {
	order, err := s.Get(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.PurchaseOrderStatusShipped) {
		return NewInvalidTransitionError("进货单", order.Status, model.PurchaseOrderStatusShipped)
	}
	now := time.Now()
	order.Status = model.PurchaseOrderStatusShipped
	order.ShippedAt = &now
	return s.purchaseRepo.Update(ctx, order)
}

// Cancel 取消进货单，仅 PAID 状态允许
func (s *PurchaseOrderService) Cancel(ctx context.Context, outTradeNo, reason string) error {
	order, err := s.Get(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.PurchaseOrderStatusCancelled) {
		return NewInvalidTransitionError("进货单", order.Status, model.PurchaseOrderStatusCancelled)
	}
	now := time.Now()
	order.Status = model.PurchaseOrderStatusCancelled
	order.Remark = reason
	order.CancelledAt = &now
	return s.purchaseRepo.Update(ctx, order)
}

// stockKey 门店库存行的定位键
type stockKey struct {
	ProductID int64
	SkuID     int64
}

// Pickup 取货：SHIPPED -> COMPLETED，并扣减目标门店库存
// 同一商品出现在多个商品行时按累计需求合并校验和扣减；
// 所有商品先整体预检再整体扣减，任一商品不足则全单失败，
// 失败时订单状态与库存均不发生变化
func (s *PurchaseOrderService) Pickup(ctx context.Context, outTradeNo string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.PurchaseOrder
		if err := tx.Preload("Products").
			Where("out_trade_no = ?", outTradeNo).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewBusinessError(404, "进货单不存在")
			}
			return err
		}
		if !order.CanAdvance(model.PurchaseOrderStatusCompleted) {
			return NewInvalidTransitionError("进货单", order.Status, model.PurchaseOrderStatusCompleted)
		}
		if len(order.Products) == 0 {
			return NewBusinessError(400, "进货单没有商品行")
		}

		// 按 (商品, SKU) 汇总全单需求
		need := make(map[stockKey]int64, len(order.Products))
		for _, line := range order.Products {
			need[stockKey{line.ProductID, line.SkuID}] += line.BaseUnits()
		}

		// 第一遍：加载库存行并按累计需求预检
		rows := make(map[stockKey]*model.StoreInventory, len(need))
		for _, line := range order.Products {
			key := stockKey{line.ProductID, line.SkuID}
			if _, loaded := rows[key]; loaded {
				continue
			}
			var row model.StoreInventory
			err := tx.
				Where("store_id = ? AND product_id = ? AND sku_id = ?",
					order.StoreID, key.ProductID, key.SkuID).
				First(&row).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NewBusinessError(400, fmt.Sprintf("门店缺少商品 %s 的库存记录", line.Name))
				}
				return err
			}
			if row.UnitCount < need[key] {
				return NewBusinessError(400,
					fmt.Sprintf("商品 %s 库存不足：需要 %d，剩余 %d", line.Name, need[key], row.UnitCount))
			}
			rows[key] = &row
		}

		// 第二遍：整体扣减
		for key, row := range rows {
			row.UnitCount -= need[key]
			if err := tx.Save(row).Error; err != nil {
				return fmt.Errorf("扣减库存失败: %w", err)
			}
		}

		now := time.Now()
		order.Status = model.PurchaseOrderStatusCompleted
		order.CompletedAt = &now
		if err := tx.Save(&order).Error; err != nil {
			return fmt.Errorf("更新进货单状态失败: %w", err)
		}
		return nil
	})
}
