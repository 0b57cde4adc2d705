package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func setupSettlementCtlTest(t *testing.T, storage service.StorageProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.SettlementItem{}, &model.Store{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	svc := service.NewSettlementService(db,
		repository.NewSettlementRepository(db),
		repository.NewStoreRepository(db))
	ctl := NewSettlementController(svc, storage)
	r := gin.New()
	r.POST("/settlement/uploadReceipt", ctl.UploadReceipt)
	return r
}

// ==================== 凭证上传 ====================

func TestUploadReceiptWithoutStorage(t *testing.T) {
	// 存储服务初始化失败时返回明确的业务错误，不能空指针崩溃
	r := setupSettlementCtlTest(t, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "receipt.png")
	if err != nil {
		t.Fatalf("构造上传文件失败: %v", err)
	}
	if _, err := part.Write([]byte("not-a-real-image")); err != nil {
		t.Fatalf("写入上传内容失败: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/settlement/uploadReceipt", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("业务失败 HTTP 状态仍应为 200, got %d", w.Code)
	}
	var envelope map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("解析响应失败: %v, body: %s", err, w.Body.String())
	}
	if envelope["code"].(float64) != 503 {
		t.Fatalf("业务码应为 503, got %v", envelope["code"])
	}
}
