package service

import (
	"context"
	"testing"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupProductSvcTest(t *testing.T) (*ProductService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Product{}, &model.Sku{}, &model.Category{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewSkuRepository(db),
		repository.NewCategoryRepository(db),
	)
	return svc, db
}

func seedCategoryForProduct(t *testing.T, db *gorm.DB) *model.Category {
	cate := &model.Category{Name: "测试分类", Level: 1, Scope: model.CategoryScopeToC}
	if err := db.Create(cate).Error; err != nil {
		t.Fatalf("插入分类失败: %v", err)
	}
	return cate
}

// ==================== 创建与校验 ====================

func TestProductCreateAggregatesPriceRange(t *testing.T) {
	svc, db := setupProductSvcTest(t)
	ctx := context.Background()
	cate := seedCategoryForProduct(t, db)

	p := &model.Product{
		Name:          "多规格商品",
		CategoryID:    cate.ID,
		OriginalPrice: 5000,
		CurrentPrice:  3000,
		Skus: []model.Sku{
			{SkuCode: "A", Price: 2800, Stock: 10, UnitCount: 5},
			{SkuCode: "B", Price: 3500, Stock: 5, UnitCount: 10},
		},
	}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if p.MinPrice != 2800 || p.MaxPrice != 3500 {
		t.Fatalf("价格区间应为 [2800, 3500], got [%d, %d]", p.MinPrice, p.MaxPrice)
	}
	if p.Status != model.ProductStatusActive {
		t.Fatalf("缺省应上架, got %s", p.Status)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(got.Skus) != 2 {
		t.Fatalf("应级联创建 2 个 SKU, got %d", len(got.Skus))
	}
}

func TestProductCreateWithoutSkusFollowsCurrentPrice(t *testing.T) {
	svc, db := setupProductSvcTest(t)
	ctx := context.Background()
	cate := seedCategoryForProduct(t, db)

	p := &model.Product{
		Name:          "单规格商品",
		CategoryID:    cate.ID,
		OriginalPrice: 1000,
		CurrentPrice:  800,
	}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if p.MinPrice != 800 || p.MaxPrice != 800 {
		t.Fatalf("无 SKU 时价格区间应跟随现价, got [%d, %d]", p.MinPrice, p.MaxPrice)
	}
}

func TestProductCreateValidation(t *testing.T) {
	svc, db := setupProductSvcTest(t)
	ctx := context.Background()
	cate := seedCategoryForProduct(t, db)

	cases := []struct {
		name string
		p    model.Product
	}{
		{"空名称", model.Product{Name: " ", CategoryID: cate.ID}},
		{"缺一级分类", model.Product{Name: "商品"}},
		{"负价格", model.Product{Name: "商品", CategoryID: cate.ID, CurrentPrice: -1}},
		{"原价低于现价", model.Product{Name: "商品", CategoryID: cate.ID, OriginalPrice: 100, CurrentPrice: 200}},
		{"SKU负库存", model.Product{Name: "商品", CategoryID: cate.ID,
			Skus: []model.Sku{{Price: 100, Stock: -1}}}},
	}
	for _, c := range cases {
		p := c.p
		if err := svc.Create(ctx, &p); !IsValidationError(err) {
			t.Errorf("%s: 应报参数校验错误, got: %v", c.name, err)
		}
	}

	// 引用不存在的分类
	bad := model.Product{Name: "商品", CategoryID: 9999}
	if err := svc.Create(ctx, &bad); err == nil {
		t.Fatal("不存在的分类引用应被拒绝")
	}
}

// ==================== 删除 ====================

func TestProductDeleteCascadesSkus(t *testing.T) {
	svc, db := setupProductSvcTest(t)
	ctx := context.Background()
	cate := seedCategoryForProduct(t, db)

	p := &model.Product{
		Name:          "待删商品",
		CategoryID:    cate.ID,
		OriginalPrice: 100,
		CurrentPrice:  100,
		Skus: []model.Sku{
			{SkuCode: "A", Price: 100},
			{SkuCode: "B", Price: 100},
		},
	}
	if err := svc.Create(ctx, p); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	goods, skus, err := svc.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	if goods != 1 || skus != 2 {
		t.Fatalf("应删除 1 商品 2 SKU, got %d/%d", goods, skus)
	}
	if _, err := svc.GetByID(ctx, p.ID); err == nil {
		t.Fatal("删除后不应再查到商品")
	}
}
