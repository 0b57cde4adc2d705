package dto

// ================== Category DTO ==================

// CategoryListReq 分类列表请求
// parentId 缺省查根层级
type CategoryListReq struct {
	PageReq
	ParentID int64 `form:"parentId"`
	Level    int   `form:"level"`
}

// CategoryAddReq 新增分类请求
type CategoryAddReq struct {
	Name     string `json:"name" binding:"required"`
	ParentID int64  `json:"parentId"`
}

// CategoryUpdateReq 重命名分类请求
type CategoryUpdateReq struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CategoryResp 分类响应
type CategoryResp struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ParentID   int64  `json:"parentId"`
	ParentName string `json:"parentName,omitempty"`
	Level      int    `json:"level"`
	Sort       int    `json:"sort"`
}
