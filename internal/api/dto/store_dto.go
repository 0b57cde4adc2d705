package dto

// ================== Store DTO ==================

// StoreListReq 门店列表请求
type StoreListReq struct {
	PageReq
	Status    string `form:"status"`
	SearchVal string `form:"searchVal"`
}

// StoreAddReq 新增门店请求
type StoreAddReq struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
	Phone       string `json:"phone"`
	ManagerID   string `json:"managerId"`
	ManagerName string `json:"managerName"`
}

// StoreUpdateReq 更新门店请求
type StoreUpdateReq struct {
	ID          int64  `json:"id" binding:"required"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Logo        string `json:"logo"`
	Phone       string `json:"phone"`
	ManagerName string `json:"managerName"`
}

// StoreStatusReq 门店营业状态请求
type StoreStatusReq struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}
