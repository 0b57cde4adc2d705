package dto

// ================== Order DTO ==================

// OrderListReq 订单列表请求，三个订单变体共用
// GET 接口走 query 绑定，search 接口走 JSON 请求体绑定
// status 传 ALL 或缺省时不过滤状态
type OrderListReq struct {
	PageReq
	Status    string `form:"status" json:"status"`
	SearchVal string `form:"searchVal" json:"searchVal"`
	StoreID   int64  `form:"storeId" json:"storeId"`
}

// OrderEditAddressReq 修改收货地址请求
type OrderEditAddressReq struct {
	OutTradeNo  string                 `json:"outTradeNo" binding:"required"`
	AddressInfo map[string]interface{} `json:"addressInfo" binding:"required"`
}

// OrderSendGoodsReq 商品订单发货请求
// logisticsType: 1 快递 2 同城配送 3 虚拟商品 4 用户自提
type OrderSendGoodsReq struct {
	OutTradeNo     string `json:"outTradeNo" binding:"required"`
	LogisticsType  int    `json:"logisticsType" binding:"required"`
	ExpressCompany string `json:"expressCompany"`
	TrackingNo     string `json:"trackingNo"`
	ItemDesc       string `json:"itemDesc"`
}

// OrderCancelReq 取消订单请求
type OrderCancelReq struct {
	OutTradeNo   string `json:"outTradeNo" binding:"required"`
	CancelReason string `json:"cancelReason"`
}

// OrderOutTradeNoReq 仅携带业务订单号的请求
type OrderOutTradeNoReq struct {
	OutTradeNo string `json:"outTradeNo" binding:"required"`
}
