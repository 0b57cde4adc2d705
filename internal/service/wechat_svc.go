package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/pkg/config"

	"github.com/go-resty/resty/v2"
)

// ==================== WechatService 微信开放平台对接 ====================

// WechatService 支付方（微信小程序）开放接口客户端
// access_token 进程内缓存，过期前 5 分钟强制刷新
type WechatService struct {
	cfg    config.WeChatConfig
	client *resty.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewWechatService 创建微信服务
func NewWechatService(cfg config.WeChatConfig) *WechatService {
	return &WechatService{
		cfg: cfg,
		client: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(10 * time.Second),
	}
}

// 辅助结构体：通用微信响应
type wxBaseResp struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

type wxTokenResp struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	ErrCode     int    `json:"errcode"`
	ErrMsg      string `json:"errmsg"`
}

// getAccessToken 获取接口调用凭证，带缓存
func (s *WechatService) getAccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	var tokenResp wxTokenResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"grant_type": "client_credential",
			"appid":      s.cfg.AppID,
			"secret":     s.cfg.Secret,
		}).
		SetResult(&tokenResp).
		Get("/cgi-bin/token")
	if err != nil {
		return "", fmt.Errorf("请求微信凭证失败: %w", err)
	}
	if resp.StatusCode() != 200 || tokenResp.ErrCode != 0 {
		return "", fmt.Errorf("微信拒绝发放凭证 (Status %d): %s", resp.StatusCode(), tokenResp.ErrMsg)
	}

	s.accessToken = tokenResp.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn-300) * time.Second)
	return s.accessToken, nil
}

// UploadShippingInfo 向微信上传订单发货信息
// 发货方式映射：1 实体物流 2 同城配送 3 虚拟商品 4 用户自提
func (s *WechatService) UploadShippingInfo(ctx context.Context, order *model.ProductOrder) error {
	token, err := s.getAccessToken(ctx)
	if err != nil {
		return err
	}

	body := map[string]interface{}{
		"order_key": map[string]interface{}{
			"order_number_type": 2,
			"transaction_id":    order.TransactionID,
		},
		"logistics_type": order.LogisticsType,
		"delivery_mode":  1,
		"payer": map[string]string{
			"openid": order.OpenID,
		},
		"upload_time": time.Now().Format(time.RFC3339),
	}
	if model.NeedLogistics(order.LogisticsType) {
		body["shipping_list"] = []map[string]string{
			{
				"tracking_no":     order.TrackingNo,
				"express_company": order.ExpressCompany,
				"item_desc":       order.ItemDesc,
			},
		}
	} else {
		body["shipping_list"] = []map[string]string{
			{"item_desc": order.ItemDesc},
		}
	}

	var result wxBaseResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetBody(body).
		SetResult(&result).
		Post("/wxa/sec/order/upload_shipping_info")
	if err != nil {
		return fmt.Errorf("上传发货信息请求失败: %w", err)
	}
	if resp.StatusCode() != 200 || result.ErrCode != 0 {
		return fmt.Errorf("微信拒绝发货信息 (errcode %d): %s", result.ErrCode, result.ErrMsg)
	}
	return nil
}

// SyncVipOrder 同步会员订单到支付方后台
// 会员商品无实体物流，按虚拟商品上报
func (s *WechatService) SyncVipOrder(ctx context.Context, order *model.VipOrder) error {
	token, err := s.getAccessToken(ctx)
	if err != nil {
		return err
	}

	body := map[string]interface{}{
		"order_key": map[string]interface{}{
			"order_number_type": 2,
			"transaction_id":    order.TransactionID,
		},
		"logistics_type": model.LogisticsTypeVirtual,
		"delivery_mode":  1,
		"payer": map[string]string{
			"openid": order.OpenID,
		},
		"shipping_list": []map[string]string{
			{"item_desc": fmt.Sprintf("会员服务 %s", order.VipLevelText)},
		},
		"upload_time": time.Now().Format(time.RFC3339),
	}

	var result wxBaseResp
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("access_token", token).
		SetBody(body).
		SetResult(&result).
		Post("/wxa/sec/order/upload_shipping_info")
	if err != nil {
		return fmt.Errorf("同步会员订单请求失败: %w", err)
	}
	if resp.StatusCode() != 200 || result.ErrCode != 0 {
		return fmt.Errorf("微信拒绝会员订单同步 (errcode %d): %s", result.ErrCode, result.ErrMsg)
	}
	return nil
}
