package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ==================== StoreService 门店服务 ====================

// StoreService 门店管理服务
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService 创建门店服务
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// newStoreNo 生成门店短编号
func newStoreNo() string {
	return "ST" + strings.ToUpper(uuid.NewString()[:8])
}

// Create 新增门店
// 新门店库存状态为未初始化，需要另行激活库存套餐
func (s *StoreService) Create(ctx context.Context, store *model.Store) error {
	if strings.TrimSpace(store.Name) == "" {
		return NewValidationError("name", "门店名称不能为空")
	}
	if store.StoreNo == "" {
		store.StoreNo = newStoreNo()
	}
	if store.Status == "" {
		store.Status = model.StoreStatusActive
	}
	store.InventoryState = model.StoreInventoryUninitialized
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return fmt.Errorf("创建门店失败: %w", err)
	}
	return nil
}

// GetByID 查询门店详情
func (s *StoreService) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(404, "门店不存在")
		}
		return nil, err
	}
	return store, nil
}

// List 分页查询门店
func (s *StoreService) List(ctx context.Context, filter repository.StoreFilter) ([]model.Store, int64, error) {
	return s.storeRepo.List(ctx, filter)
}

// Update 更新门店基础信息
// 余额与库存状态字段不走此入口，避免绕过结算/激活流程
func (s *StoreService) Update(ctx context.Context, id int64, name, address, logo, phone, managerName string) error {
	store, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if name != "" {
		store.Name = name
	}
	if address != "" {
		store.Address = address
	}
	if logo != "" {
		store.Logo = logo
	}
	if phone != "" {
		store.Phone = phone
	}
	if managerName != "" {
		store.ManagerName = managerName
	}
	return s.storeRepo.Update(ctx, store)
}

// SetStatus 门店营业/停业
func (s *StoreService) SetStatus(ctx context.Context, id int64, status string) error {
	if status != model.StoreStatusActive && status != model.StoreStatusInactive {
		return NewValidationError("status", "无效的门店状态")
	}
	store, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	store.Status = status
	return s.storeRepo.Update(ctx, store)
}
