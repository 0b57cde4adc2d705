package model

import (
	"time"
)

// ==================== 分类作用域常量 ====================

// CategoryScope 分类所属业务域
// toB 为经销商端分类树，toC 为消费者端分类树，两棵树互不引用
const (
	CategoryScopeToB = "tob"
	CategoryScopeToC = "toc"
)

// 分类层级上限：一级/二级/三级
const CategoryMaxLevel = 3

// RootParentID 根层级父ID
// 自增主键永远不会分配 0，根标记不会与真实分类ID冲突
const RootParentID int64 = 0

// ==================== Category 分类 ====================

// Category 商品分类
type Category struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:64;not null"`
	ParentID int64  `gorm:"index;default:0"`
	Level    int    `gorm:"not null"` // 子分类层级恒等于父分类层级 + 1
	Scope    string `gorm:"size:8;index;not null"`
	Sort     int    `gorm:"default:0"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (*Category) TableName() string {
	return "categories"
}

// IsRoot 是否为一级分类
func (c *Category) IsRoot() bool {
	return c.ParentID == RootParentID
}
