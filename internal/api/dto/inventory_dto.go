package dto

// ================== Inventory DTO ==================

// InventoryItemReq 套餐商品行参数
type InventoryItemReq struct {
	ProductID int64 `json:"productId" binding:"required"`
	SkuID     int64 `json:"skuId"`
	Quantity  int64 `json:"quantity" binding:"required"`
	UnitCount int64 `json:"unitCount"` // 0 时回退到 SKU 配置
}

// InventoryPackageAddReq 新增套餐请求
type InventoryPackageAddReq struct {
	Name  string             `json:"name" binding:"required"`
	Desc  string             `json:"desc"`
	Items []InventoryItemReq `json:"items" binding:"required"`
}

// InventoryPackageUpdateReq 更新套餐请求
type InventoryPackageUpdateReq struct {
	ID int64 `json:"id" binding:"required"`
	InventoryPackageAddReq
}

// InventoryPackageStatusReq 启停套餐请求
type InventoryPackageStatusReq struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// InventoryProductRef 套餐商品行引用
// 字段名与小程序端套餐配置数据保持一致（下划线风格）
type InventoryProductRef struct {
	ProductID int64 `json:"product_id" binding:"required"`
	SkuID     int64 `json:"sku_id"`
	Quantity  int64 `json:"quantity"`
	UnitCount int64 `json:"unit_count"`
}

// InventoryProductDataReq 批量获取套餐商品行商品详情请求
type InventoryProductDataReq struct {
	InventoryProduct []InventoryProductRef `json:"inventoryProduct" binding:"required"`
}

// InventoryActivateReq 门店激活套餐请求
type InventoryActivateReq struct {
	StoreID   int64 `json:"storeId" binding:"required"`
	PackageID int64 `json:"packageId" binding:"required"`
}

// StockAdjustReq 手动调整门店库存请求（基础单位）
type StockAdjustReq struct {
	StoreID   int64 `json:"storeId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
	SkuID     int64 `json:"skuId"`
	Delta     int64 `json:"delta" binding:"required"`
}
