package router

import (
	"mall_admin_server/internal/controller"
	"mall_admin_server/internal/middleware"
	"mall_admin_server/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "mall_admin_server/docs"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Auth       *controller.AuthController
	TobCate    *controller.CategoryController
	TocCate    *controller.CategoryController
	Product    *controller.ProductController
	Order      *controller.OrderController
	Purchase   *controller.PurchaseOrderController
	Inventory  *controller.InventoryController
	Settlement *controller.SettlementController
	Rate       *controller.RateController
	Store      *controller.StoreController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, authSvc *service.AuthService, c *Controllers) {
	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Use(middleware.AccessLog())

	// 登录不鉴权
	auth := r.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
	}

	// 以下全部需要登录
	api := r.Group("/", middleware.JWTAuth(authSvc))
	{
		// 后台账号
		api.POST("/auth/addUser", c.Auth.CreateUser)

		// 经销商端分类树
		cate := api.Group("/cate")
		{
			cate.GET("/get", c.TobCate.Get)
			cate.GET("/getByLevel", c.TobCate.GetByLevel)
			cate.POST("/add", c.TobCate.Add)
			cate.POST("/update", c.TobCate.Update)
			cate.POST("/del", c.TobCate.Del)
		}

		// 消费者端分类树
		tocCate := api.Group("/tocCate")
		{
			tocCate.GET("/get", c.TocCate.Get)
			tocCate.GET("/getByLevel", c.TocCate.GetByLevel)
			tocCate.POST("/add", c.TocCate.Add)
			tocCate.POST("/update", c.TocCate.Update)
			tocCate.POST("/del", c.TocCate.Del)
		}

		// 商品管理
		product := api.Group("/product")
		{
			product.GET("/get", c.Product.Get)
			product.GET("/getAllTob", c.Product.GetAllTob)
			product.POST("/search", c.Product.Search)
			product.POST("/add", c.Product.Add)
			product.POST("/update", c.Product.Update)
			product.POST("/del", c.Product.Del)
		}

		// 订单管理
		order := api.Group("/order")
		{
			order.GET("/getProduct", c.Order.GetProduct)
			order.POST("/search", c.Order.Search)
			order.GET("/getVip", c.Order.GetVip)
			order.POST("/searchVipOrder", c.Order.SearchVipOrder)
			order.GET("/offlineOrder", c.Order.OfflineOrder)
			order.GET("/stats", c.Order.Stats)
			order.POST("/editAddress", c.Order.EditAddress)
			order.POST("/sendGoods", c.Order.SendGoods)
			order.POST("/sendVip", c.Order.SendVip)
			order.POST("/cancel", c.Order.Cancel)
		}

		// 店长进货单
		purchased := api.Group("/purchasedOrder")
		{
			purchased.GET("/get", c.Purchase.Get)
			purchased.POST("/search", c.Purchase.Search)
			purchased.POST("/ship", c.Purchase.Ship)
			purchased.POST("/pickup", c.Purchase.Pickup)
			purchased.POST("/cancel", c.Purchase.Cancel)
		}

		// 库存套餐
		inventory := api.Group("/inventoryPackage")
		{
			inventory.GET("/get", c.Inventory.Get)
			inventory.GET("/getAll", c.Inventory.GetAll)
			inventory.POST("/add", c.Inventory.Add)
			inventory.POST("/update", c.Inventory.Update)
			inventory.POST("/status", c.Inventory.SetStatus)
			inventory.POST("/del", c.Inventory.Del)
			inventory.POST("/productData", c.Inventory.ProductData)
			inventory.POST("/activate", c.Inventory.Activate)
			inventory.GET("/storeStock", c.Inventory.StoreStock)
			inventory.POST("/adjustStock", c.Inventory.AdjustStock)
		}

		// 结算管理
		settlement := api.Group("/settlement")
		{
			settlement.GET("/managerGet", c.Settlement.ManagerGet)
			settlement.POST("/search", c.Settlement.Search)
			settlement.POST("/update", c.Settlement.Update)
			settlement.POST("/uploadReceipt", c.Settlement.UploadReceipt)
		}

		// 积分规则
		rate := api.Group("/rate")
		{
			rate.GET("/get", c.Rate.Get)
			rate.POST("/add", c.Rate.Add)
			rate.POST("/update", c.Rate.Update)
			rate.POST("/del", c.Rate.Del)
		}

		// 门店管理
		store := api.Group("/store")
		{
			store.GET("/get", c.Store.Get)
			store.GET("/detail", c.Store.Detail)
			store.POST("/add", c.Store.Add)
			store.POST("/update", c.Store.Update)
			store.POST("/status", c.Store.SetStatus)
		}
	}
}
