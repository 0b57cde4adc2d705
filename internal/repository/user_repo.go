package repository

import (
	"context"
	"time"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== SysUserRepository 后台用户仓库 ====================

// SysUserRepository 后台用户仓库接口
type SysUserRepository interface {
	Create(ctx context.Context, user *model.SysUser) error
	GetByID(ctx context.Context, id int64) (*model.SysUser, error)
	GetByUsername(ctx context.Context, username string) (*model.SysUser, error)
	TouchLogin(ctx context.Context, id int64) error
}

type sysUserRepository struct {
	db *gorm.DB
}

// NewSysUserRepository 创建后台用户仓库
func NewSysUserRepository(db *gorm.DB) SysUserRepository {
	return &sysUserRepository{db: db}
}

func (r *sysUserRepository) Create(ctx context.Context, user *model.SysUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *sysUserRepository) GetByID(ctx context.Context, id int64) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *sysUserRepository) GetByUsername(ctx context.Context, username string) (*model.SysUser, error) {
	var user model.SysUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *sysUserRepository) TouchLogin(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.SysUser{}).
		Where("id = ?", id).Update("last_login_at", &now).Error
}
