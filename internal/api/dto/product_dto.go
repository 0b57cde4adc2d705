package dto

// ================== Product DTO ==================

// ProductListReq 商品列表请求
type ProductListReq struct {
	PageReq
	CategoryID int64  `form:"categoryId" json:"categoryId"`
	Status     string `form:"status" json:"status"`
	Type       string `form:"type" json:"type"`
	Hot        string `form:"hot" json:"hot"`
	SearchVal  string `form:"searchVal" json:"searchVal"`
}

// SkuReq SKU 参数
type SkuReq struct {
	ID        int64                  `json:"id"`
	SkuCode   string                 `json:"skuCode"`
	Price     int64                  `json:"price"` // 分
	Stock     int64                  `json:"stock"`
	Image     string                 `json:"image"`
	Attrs     map[string]interface{} `json:"attrs"`
	UnitCount int64                  `json:"unitCount"`
}

// ProductAddReq 新增商品请求
type ProductAddReq struct {
	SkuNo           string   `json:"skuNo"`
	Name            string   `json:"name" binding:"required"`
	Desc            string   `json:"desc"`
	CategoryID      int64    `json:"categoryId" binding:"required"`
	SubCategoryID   int64    `json:"subCategoryId"`
	ThirdCategoryID int64    `json:"thirdCategoryId"`
	OriginalPrice   int64    `json:"originalPrice"` // 分
	CurrentPrice    int64    `json:"currentPrice"`  // 分
	Cover           string   `json:"cover"`
	ProImages       []string `json:"proImages"`
	Models          []string `json:"models"`
	Status          string   `json:"status"`
	Hot             string   `json:"hot"`
	Type            string   `json:"type"`
	Skus            []SkuReq `json:"skus"`
}

// ProductUpdateReq 更新商品请求
type ProductUpdateReq struct {
	ID int64 `json:"id" binding:"required"`
	ProductAddReq
}

// ProductDeleteResp 删除商品响应
type ProductDeleteResp struct {
	Goods int64 `json:"goods"`
	Skus  int64 `json:"skus"`
}
