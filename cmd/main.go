package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mall_admin_server/internal/controller"
	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/internal/router"
	"mall_admin_server/internal/service"
	"mall_admin_server/internal/task"
	"mall_admin_server/pkg/config"
	"mall_admin_server/pkg/database"
	"mall_admin_server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title 商城管理后台 API
// @version 1.0
// @description 商品 / 订单 / 门店 / 库存 / 结算 管理端接口
// @BasePath /
func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	logger.InitLogger(cfg.Server.Mode)
	defer zap.S().Sync()

	// 3. 初始化数据库
	db := initDatabase(cfg)

	// 4. 初始化依赖
	deps := initDependencies(db, cfg)

	// 5. 启动定时任务
	initTasks(deps, cfg)

	// 6. 初始化路由
	gin.SetMode(ginMode(cfg.Server.Mode))
	r := gin.Default()
	router.InitRoutes(r, deps.Services.Auth, deps.Controllers)

	// 7. 启动服务
	startServer(r, cfg.Server.Port)
}

func ginMode(mode string) string {
	if mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	Category       repository.CategoryRepository
	Product        repository.ProductRepository
	Sku            repository.SkuRepository
	ProductOrder   repository.ProductOrderRepository
	VipOrder       repository.VipOrderRepository
	OfflineOrder   repository.OfflineOrderRepository
	PurchaseOrder  repository.PurchaseOrderRepository
	Package        repository.InventoryPackageRepository
	StoreInventory repository.StoreInventoryRepository
	Settlement     repository.SettlementRepository
	Store          repository.StoreRepository
	Rate           repository.RateRuleRepository
	SysUser        repository.SysUserRepository
}

// Services 服务集合
type Services struct {
	Auth       *service.AuthService
	Category   *service.CategoryService
	Product    *service.ProductService
	Order      *service.OrderService
	Purchase   *service.PurchaseOrderService
	Inventory  *service.InventoryService
	Settlement *service.SettlementService
	Rate       *service.RateRuleService
	Store      *service.StoreService
	Wechat     *service.WechatService
	Storage    service.StorageProvider
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库并自动迁移
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := database.Open(cfg.Database.DSN(), cfg.Server.Mode == "debug",
		// 后台账号
		&model.SysUser{},
		// 分类 & 商品
		&model.Category{}, &model.Product{}, &model.Sku{},
		// 订单
		&model.ProductOrder{}, &model.OrderProduct{},
		&model.VipOrder{}, &model.OfflineOrder{},
		&model.PurchaseOrder{}, &model.PurchaseOrderProduct{},
		// 门店 & 库存
		&model.Store{}, &model.InventoryPackage{}, &model.InventoryItem{}, &model.StoreInventory{},
		// 结算 & 积分
		&model.SettlementItem{}, &model.RateRule{},
	)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB, cfg *config.Config) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Category:       repository.NewCategoryRepository(db),
		Product:        repository.NewProductRepository(db),
		Sku:            repository.NewSkuRepository(db),
		ProductOrder:   repository.NewProductOrderRepository(db),
		VipOrder:       repository.NewVipOrderRepository(db),
		OfflineOrder:   repository.NewOfflineOrderRepository(db),
		PurchaseOrder:  repository.NewPurchaseOrderRepository(db),
		Package:        repository.NewInventoryPackageRepository(db),
		StoreInventory: repository.NewStoreInventoryRepository(db),
		Settlement:     repository.NewSettlementRepository(db),
		Store:          repository.NewStoreRepository(db),
		Rate:           repository.NewRateRuleRepository(db),
		SysUser:        repository.NewSysUserRepository(db),
	}

	// -------- 基础服务 --------
	storage, err := service.NewStorageProvider(cfg.Storage)
	if err != nil {
		log.Printf("警告: 存储服务初始化失败，凭证上传接口将不可用: %v", err)
	}
	wechatSvc := service.NewWechatService(cfg.WeChat)

	// -------- 业务服务 --------
	services := &Services{
		Auth:       service.NewAuthService(repos.SysUser, cfg.JWT),
		Category:   service.NewCategoryService(repos.Category, repos.Product),
		Product:    service.NewProductService(repos.Product, repos.Sku, repos.Category),
		Order:      service.NewOrderService(repos.ProductOrder, repos.VipOrder, repos.OfflineOrder, wechatSvc),
		Purchase:   service.NewPurchaseOrderService(db, repos.PurchaseOrder),
		Inventory:  service.NewInventoryService(db, repos.Package, repos.StoreInventory, repos.Sku, repos.Product),
		Settlement: service.NewSettlementService(db, repos.Settlement, repos.Store),
		Rate:       service.NewRateRuleService(repos.Rate),
		Store:      service.NewStoreService(repos.Store),
		Wechat:     wechatSvc,
		Storage:    storage,
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:       controller.NewAuthController(services.Auth),
		TobCate:    controller.NewCategoryController(services.Category, model.CategoryScopeToB),
		TocCate:    controller.NewCategoryController(services.Category, model.CategoryScopeToC),
		Product:    controller.NewProductController(services.Product),
		Order:      controller.NewOrderController(services.Order),
		Purchase:   controller.NewPurchaseOrderController(services.Purchase),
		Inventory:  controller.NewInventoryController(services.Inventory),
		Settlement: controller.NewSettlementController(services.Settlement, services.Storage),
		Rate:       controller.NewRateController(services.Rate),
		Store:      controller.NewStoreController(services.Store),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies, cfg *config.Config) {
	if !cfg.Task.SettlementEnabled {
		log.Println("月度结算任务未启用")
		return
	}

	settlementTask := task.NewSettlementTask(deps.Services.Settlement, cfg.Task.SettlementCron)
	settlementTask.Start()
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port int) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%d", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}
	log.Println("服务已退出")
}
