package dto

// ================== Settlement DTO ==================

// SettlementListReq 结算单列表请求
type SettlementListReq struct {
	PageReq
	Status    string `form:"status" json:"status"`
	SearchVal string `form:"searchVal" json:"searchVal"` // 手机号或结算订单号
}

// SettlementUpdateReq 打款确认请求
// success 为 false 时仅记录失败原因，金额与凭证忽略
type SettlementUpdateReq struct {
	OutTradeNo   string `json:"outTradeNo" binding:"required"`
	Success      *bool  `json:"success" binding:"required"`
	Amount       int64  `json:"amount"` // 实际打款金额（分）
	ReceiptFiles string `json:"receiptFiles"`
	Remark       string `json:"remark"`
}
