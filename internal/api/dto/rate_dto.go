package dto

// ================== Rate DTO ==================

// RateAddReq 新增积分规则请求
type RateAddReq struct {
	EarnRate      float64 `json:"earnRate"`
	UseRate       float64 `json:"useRate"`
	MaxUsePercent float64 `json:"maxUsePercent"`
}

// RateUpdateReq 更新积分规则请求
type RateUpdateReq struct {
	ID int64 `json:"id" binding:"required"`
	RateAddReq
}
