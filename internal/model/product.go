package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ==================== 商品状态常量 ====================

// ProductStatus 商品上下架状态
const (
	ProductStatusActive   = "active"   // 上架中
	ProductStatusInactive = "inactive" // 已下架
)

// ProductType 商品可见范围
const (
	ProductTypeUser    = "user"    // 普通用户可见
	ProductTypeManager = "manager" // 店长进货商品
	ProductTypeVip     = "vip"     // 会员商品
	ProductTypeBoth    = "both"    // 全部可见
)

// ProductHot 热门推荐标记
const (
	ProductHotEnable  = "enable"
	ProductHotDisable = "disable"
)

// ==================== Product 商品主表 ====================

// Product 商品
// 商品独占其 SKU 列表，SKU 不跨商品共享
// 存在 SKU 时商品级价格仅作展示参考，可售价格/库存以 SKU 为准
type Product struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	SkuNo string `gorm:"size:64;index"`
	Name  string `gorm:"size:255;not null"`
	Desc  string `gorm:"type:text"`

	// 分类引用：一级必填，二三级可选
	CategoryID      int64 `gorm:"index;not null"`
	SubCategoryID   int64 `gorm:"index"`
	ThirdCategoryID int64 `gorm:"index"`

	// 金额（分为单位存储）
	OriginalPrice int64 `gorm:"not null"` // 原价，恒 >= 现价
	CurrentPrice  int64 `gorm:"not null"`
	MinPrice      int64 // 聚合 SKU 后的最低价
	MaxPrice      int64 // 聚合 SKU 后的最高价

	// 展示
	Cover     string         `gorm:"size:500"`
	ProImages datatypes.JSON `gorm:"type:jsonb"`
	Models    datatypes.JSON `gorm:"type:jsonb"` // 支持的型号列表

	LookNum int64  `gorm:"default:0"`
	Status  string `gorm:"size:16;index;default:active"`
	Hot     string `gorm:"size:16;default:disable"`
	Type    string `gorm:"size:16;index;default:user"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// 关联
	Skus []Sku `gorm:"foreignKey:GoodsID"`
}

func (*Product) TableName() string {
	return "products"
}

// GetOriginalPrice 获取原价（元）
func (p *Product) GetOriginalPrice() float64 {
	return float64(p.OriginalPrice) / 100
}

// GetCurrentPrice 获取现价（元）
func (p *Product) GetCurrentPrice() float64 {
	return float64(p.CurrentPrice) / 100
}

// HasSkus 是否存在可售变体
func (p *Product) HasSkus() bool {
	return len(p.Skus) > 0
}

// ==================== Sku 商品变体 ====================

// Sku 商品SKU
type Sku struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	GoodsID int64  `gorm:"index;not null"`
	SkuCode string `gorm:"size:100;index"`

	// 金额（分为单位存储）
	Price int64 `gorm:"not null"`

	Stock int64  `gorm:"default:0"`
	Image string `gorm:"size:500"`

	// 规格映射，如 { 颜色: 红色, 尺寸: M }，区分不同变体
	Attrs datatypes.JSONMap `gorm:"type:jsonb"`

	// 基础单位换算系数，如 1盒 = 5片
	UnitCount int64 `gorm:"default:1"`

	// 审计字段
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (*Sku) TableName() string {
	return "skus"
}

// GetPrice 获取售价（元）
func (s *Sku) GetPrice() float64 {
	return float64(s.Price) / 100
}

// BaseUnitCount SKU 的基础单位系数，未配置时按 1 处理
func (s *Sku) BaseUnitCount() int64 {
	if s.UnitCount > 0 {
		return s.UnitCount
	}
	return 1
}
