package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupOrderCtlTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.ProductOrder{}, &model.OrderProduct{},
		&model.VipOrder{}, &model.OfflineOrder{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	svc := service.NewOrderService(
		repository.NewProductOrderRepository(db),
		repository.NewVipOrderRepository(db),
		repository.NewOfflineOrderRepository(db),
		nil, // 不触发支付方同步
	)
	ctl := NewOrderController(svc)
	r := gin.New()
	r.GET("/order/getProduct", ctl.GetProduct)
	r.POST("/order/search", ctl.Search)
	r.POST("/order/searchVipOrder", ctl.SearchVipOrder)
	return r, db
}

func doOrderJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) map[string]interface{} {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("编码请求失败: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("解析响应失败: %v, body: %s", err, w.Body.String())
	}
	return envelope
}

func orderListOf(t *testing.T, envelope map[string]interface{}) []interface{} {
	if envelope["code"].(float64) != 200 {
		t.Fatalf("搜索失败: %v", envelope["message"])
	}
	page, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("应返回分页信封, got %v", envelope["data"])
	}
	list, _ := page["list"].([]interface{})
	return list
}

// ==================== 搜索接口 ====================

func TestOrderSearchReadsBodyFilter(t *testing.T) {
	r, db := setupOrderCtlTest(t)

	// 两单不同手机号，搜索条件走 POST 请求体
	db.Create(&model.ProductOrder{OutTradeNo: "PRO20260001", Status: model.ProductOrderStatusPaid, UserMobile: "13800000000"})
	db.Create(&model.ProductOrder{OutTradeNo: "PRO20260002", Status: model.ProductOrderStatusCompleted, UserMobile: "13900000000"})

	list := orderListOf(t, doOrderJSON(t, r, http.MethodPost, "/order/search", gin.H{
		"searchVal": "139",
		"status":    "ALL",
	}))
	if len(list) != 1 {
		t.Fatalf("按手机号搜索应命中 1 单, got %d", len(list))
	}
	hit := list[0].(map[string]interface{})
	if hit["OutTradeNo"] != "PRO20260002" {
		t.Fatalf("命中订单不对: %v", hit["OutTradeNo"])
	}

	// 请求体里的状态过滤同样生效
	list = orderListOf(t, doOrderJSON(t, r, http.MethodPost, "/order/search", gin.H{
		"status": model.ProductOrderStatusPaid,
	}))
	if len(list) != 1 {
		t.Fatalf("按状态过滤应命中 1 单, got %d", len(list))
	}
}

func TestOrderSearchBodyPaging(t *testing.T) {
	r, db := setupOrderCtlTest(t)

	db.Create(&model.ProductOrder{OutTradeNo: "PRO20260010", Status: model.ProductOrderStatusPaid})
	db.Create(&model.ProductOrder{OutTradeNo: "PRO20260011", Status: model.ProductOrderStatusPaid})
	db.Create(&model.ProductOrder{OutTradeNo: "PRO20260012", Status: model.ProductOrderStatusPaid})

	envelope := doOrderJSON(t, r, http.MethodPost, "/order/search", gin.H{
		"pageNum":  2,
		"pageSize": 2,
	})
	list := orderListOf(t, envelope)
	if len(list) != 1 {
		t.Fatalf("第 2 页应剩 1 单, got %d", len(list))
	}
	page := envelope["data"].(map[string]interface{})
	if page["total"].(float64) != 3 {
		t.Fatalf("total 应为 3, got %v", page["total"])
	}
}

func TestVipOrderSearchReadsBodyFilter(t *testing.T) {
	r, db := setupOrderCtlTest(t)

	db.Create(&model.VipOrder{OutTradeNo: "VIP20260001", Status: model.VipOrderStatusPaid, UserMobile: "13700000000"})
	db.Create(&model.VipOrder{OutTradeNo: "VIP20260002", Status: model.VipOrderStatusCompleted, UserMobile: "13600000000"})

	list := orderListOf(t, doOrderJSON(t, r, http.MethodPost, "/order/searchVipOrder", gin.H{
		"searchVal": "VIP20260001",
	}))
	if len(list) != 1 {
		t.Fatalf("按订单号搜索应命中 1 单, got %d", len(list))
	}
}
