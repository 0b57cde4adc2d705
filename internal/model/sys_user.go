package model

import (
	"time"

	"gorm.io/gorm"
)

// ==================== SysUser 后台用户 ====================

// SysUser 管理后台账号
type SysUser struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;size:64;not null"`
	Password string `gorm:"size:255;not null"` // bcrypt 哈希
	Nickname string `gorm:"size:64"`
	Role     string `gorm:"size:32;default:admin"`
	Mobile   string `gorm:"size:20"`

	LastLoginAt *time.Time

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (*SysUser) TableName() string {
	return "sys_users"
}
