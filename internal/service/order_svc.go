package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// trackingNoPattern 快递单号格式：字母、数字、连字符
var trackingNoPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务，覆盖商品订单、会员订单与线下订单的管理端操作
type OrderService struct {
	productOrderRepo repository.ProductOrderRepository
	vipOrderRepo     repository.VipOrderRepository
	offlineOrderRepo repository.OfflineOrderRepository
	wechatSvc        *WechatService
}

// NewOrderService 创建订单服务
func NewOrderService(
	productOrderRepo repository.ProductOrderRepository,
	vipOrderRepo repository.VipOrderRepository,
	offlineOrderRepo repository.OfflineOrderRepository,
	wechatSvc *WechatService,
) *OrderService {
	return &OrderService{
		productOrderRepo: productOrderRepo,
		vipOrderRepo:     vipOrderRepo,
		offlineOrderRepo: offlineOrderRepo,
		wechatSvc:        wechatSvc,
	}
}

// ==================== 商品订单 ====================

// ListProductOrders 分页查询商品订单
func (s *OrderService) ListProductOrders(ctx context.Context, filter repository.OrderFilter) ([]model.ProductOrder, int64, error) {
	return s.productOrderRepo.List(ctx, filter)
}

// GetProductOrder 按业务订单号查询商品订单
func (s *OrderService) GetProductOrder(ctx context.Context, outTradeNo string) (*model.ProductOrder, error) {
	order, err := s.productOrderRepo.GetByOutTradeNo(ctx, outTradeNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "订单不存在")
		}
		return nil, err
	}
	return order, nil
}

// EditAddress 修改收货地址
// 仅在发货前（待支付/已支付）允许改址
func (s *OrderService) EditAddress(ctx context.Context, outTradeNo string, address datatypes.JSONMap) error {
	order, err := s.GetProductOrder(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if order.Status != model.ProductOrderStatusPending && order.Status != model.ProductOrderStatusPaid {
		return NewBusinessError(400, "订单已发货，无法修改收货地址")
	}
	if len(address) == 0 {
		return NewValidationError("addressInfo", "收货地址不能为空")
	}
	return s.productOrderRepo.UpdateFields(ctx, order.ID, map[string]interface{}{
		"address_info": address,
	})
}

// ShipmentInput 发货参数
type ShipmentInput struct {
	OutTradeNo     string
	LogisticsType  int
	ExpressCompany string
	TrackingNo     string
	ItemDesc       string
}

// validateShipment 按发货方式校验物流字段
// 快递与同城配送必须携带完整物流信息，虚拟商品与自提不校验
func validateShipment(in ShipmentInput) error {
	if !model.NeedLogistics(in.LogisticsType) {
		return nil
	}
	if strings.TrimSpace(in.ExpressCompany) == "" {
		return NewValidationError("expressCompany", "快递公司不能为空")
	}
	trackingNo := strings.TrimSpace(in.TrackingNo)
	if trackingNo == "" {
		return NewValidationError("trackingNo", "快递单号不能为空")
	}
	if len(trackingNo) > 128 {
		return NewValidationError("trackingNo", "快递单号长度不能超过128")
	}
	if !trackingNoPattern.MatchString(trackingNo) {
		return NewValidationError("trackingNo", "快递单号只能包含字母、数字和连字符")
	}
	return nil
}

// SendGoods 商品订单发货：PAID -> SHIPPED
// 发货成功后向支付方上传发货信息，上传失败只记录日志不回滚订单
func (s *OrderService) SendGoods(ctx context.Context, in ShipmentInput) error {
	order, err := s.GetProductOrder(ctx, in.OutTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.ProductOrderStatusShipped) {
		return NewInvalidTransitionError("商品订单", order.Status, model.ProductOrderStatusShipped)
	}
	if err := validateShipment(in); err != nil {
		return err
	}

	now := time.Now()
	order.Status = model.ProductOrderStatusShipped
	order.LogisticsType = in.LogisticsType
	order.ExpressCompany = strings.TrimSpace(in.ExpressCompany)
	order.TrackingNo = strings.TrimSpace(in.TrackingNo)
	order.ItemDesc = in.ItemDesc
	order.ShippedAt = &now

	if err := s.productOrderRepo.Update(ctx, order); err != nil {
		return fmt.Errorf("更新订单发货状态失败: %w", err)
	}

	if s.wechatSvc != nil {
		if err := s.wechatSvc.UploadShippingInfo(ctx, order); err != nil {
			zap.S().Warnf("上传发货信息失败 outTradeNo=%s: %v", order.OutTradeNo, err)
		}
	}
	return nil
}

// CompleteProductOrder 确认收货：SHIPPED -> COMPLETED
func (s *OrderService) CompleteProductOrder(ctx context.Context, outTradeNo string) error {
	order, err := s.GetProductOrder(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.ProductOrderStatusCompleted) {
		return NewInvalidTransitionError("商品订单", order.Status, model.ProductOrderStatusCompleted)
	}
	now := time.Now()
	order.Status = model.ProductOrderStatusCompleted
	order.CompletedAt = &now
	return s.productOrderRepo.Update(ctx, order)
}

// CancelProductOrder 取消订单并批注取消原因
func (s *OrderService) CancelProductOrder(ctx context.Context, outTradeNo, reason string) error {
	order, err := s.GetProductOrder(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.ProductOrderStatusCancelled) {
		return NewInvalidTransitionError("商品订单", order.Status, model.ProductOrderStatusCancelled)
	}
	now := time.Now()
	order.Status = model.ProductOrderStatusCancelled
	order.CancelReason = reason
	order.CancelledAt = &now
	return s.productOrderRepo.Update(ctx, order)
}

// OrderStats 订单状态汇总
type OrderStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"byStatus"`
	Pending   int64            `json:"pending"`
	Paid      int64            `json:"paid"`
	Shipped   int64            `json:"shipped"`
	Completed int64            `json:"completed"`
}

// ProductOrderStats 统计各状态订单数量
func (s *OrderService) ProductOrderStats(ctx context.Context) (*OrderStats, error) {
	counts, err := s.productOrderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计订单失败: %w", err)
	}
	stats := &OrderStats{ByStatus: counts}
	for _, c := range counts {
		stats.Total += c
	}
	stats.Pending = counts[model.ProductOrderStatusPending]
	stats.Paid = counts[model.ProductOrderStatusPaid]
	stats.Shipped = counts[model.ProductOrderStatusShipped]
	stats.Completed = counts[model.ProductOrderStatusCompleted]
	return stats, nil
}

// ==================== 会员订单 ====================

// ListVipOrders 分页查询会员订单
func (s *OrderService) ListVipOrders(ctx context.Context, filter repository.OrderFilter) ([]model.VipOrder, int64, error) {
	return s.vipOrderRepo.List(ctx, filter)
}

// GetVipOrder 按业务订单号查询会员订单
func (s *OrderService) GetVipOrder(ctx context.Context, outTradeNo string) (*model.VipOrder, error) {
	order, err := s.vipOrderRepo.GetByOutTradeNo(ctx, outTradeNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "会员订单不存在")
		}
		return nil, err
	}
	return order, nil
}

// SendVip 会员订单履约：PAID -> SHIPPED
// 会员商品没有实体物流，SHIPPED 表示支付方后台订单同步完成
func (s *OrderService) SendVip(ctx context.Context, outTradeNo string) error {
	order, err := s.GetVipOrder(ctx, outTradeNo)
	if err != nil {
		return err
	}
	if !order.CanAdvance(model.VipOrderStatusShipped) {
		return NewInvalidTransitionError("会员订单", order.Status, model.VipOrderStatusShipped)
	}

	if s.wechatSvc != nil {
		if err := s.wechatSvc.SyncVipOrder(ctx, order); err != nil {
			return fmt.Errorf("同步会员订单失败: %w", err)
		}
	}

	now := time.Now()
	order.Status = model.VipOrderStatusShipped
	order.SyncedAt = &now
	return s.vipOrderRepo.Update(ctx, order)
}

// ==================== 线下订单 ====================

// ListOfflineOrders 分页查询线下订单（只读）
func (s *OrderService) ListOfflineOrders(ctx context.Context, filter repository.OrderFilter) ([]model.OfflineOrder, int64, error) {
	return s.offlineOrderRepo.List(ctx, filter)
}
