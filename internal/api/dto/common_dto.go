package dto

// ================== 通用 DTO ==================

// PageReq 通用分页参数
type PageReq struct {
	Page     int `form:"pageNum,default=1" json:"pageNum"`
	PageSize int `form:"pageSize,default=20" json:"pageSize"`
}

// PageResp 通用分页响应信封
type PageResp struct {
	List      interface{} `json:"list"`
	Total     int64       `json:"total"`
	PageNum   int         `json:"pageNum"`
	PageSize  int         `json:"pageSize"`
	TotalPage int64       `json:"totalPage"`
}

// NewPageResp 构建分页响应
func NewPageResp(list interface{}, total int64, page, pageSize int) *PageResp {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	return &PageResp{
		List:      list,
		Total:     total,
		PageNum:   page,
		PageSize:  pageSize,
		TotalPage: totalPage,
	}
}

// IDReq 仅携带主键的请求
type IDReq struct {
	ID int64 `json:"id" binding:"required"`
}
