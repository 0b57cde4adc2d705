package repository

import (
	"context"

	"mall_admin_server/internal/model"

	"gorm.io/gorm"
)

// ==================== 过滤条件 ====================

// CategoryFilter 分类查询条件
type CategoryFilter struct {
	Scope    string
	ParentID int64
	Level    int
	Page     int
	PageSize int
}

// ==================== CategoryRepository 分类仓库 ====================

// CategoryRepository 分类仓库接口
type CategoryRepository interface {
	Create(ctx context.Context, cate *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	GetByName(ctx context.Context, scope, name string, parentID int64) (*model.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]model.Category, int64, error)
	ListByLevel(ctx context.Context, scope string, level int) ([]model.Category, error)
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	CountChildren(ctx context.Context, id int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, cate *model.Category) error {
	return r.db.WithContext(ctx).Create(cate).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var cate model.Category
	err := r.db.WithContext(ctx).First(&cate, id).Error
	if err != nil {
		return nil, err
	}
	return &cate, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, scope, name string, parentID int64) (*model.Category, error) {
	var cate model.Category
	err := r.db.WithContext(ctx).
		Where("scope = ? AND name = ? AND parent_id = ?", scope, name, parentID).
		First(&cate).Error
	if err != nil {
		return nil, err
	}
	return &cate, nil
}

func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter) ([]model.Category, int64, error) {
	var cates []model.Category
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("scope = ?", filter.Scope).
		Where("parent_id = ?", filter.ParentID)

	if filter.Level > 0 {
		db = db.Where("level = ?", filter.Level)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	err := db.
		Order("sort ASC, id ASC").
		Limit(filter.PageSize).
		Offset(offset).
		Find(&cates).Error

	return cates, total, err
}

func (r *categoryRepository) ListByLevel(ctx context.Context, scope string, level int) ([]model.Category, error) {
	var cates []model.Category
	err := r.db.WithContext(ctx).
		Where("scope = ? AND level = ?", scope, level).
		Order("sort ASC, id ASC").
		Find(&cates).Error
	return cates, err
}

func (r *categoryRepository) UpdateName(ctx context.Context, id int64, name string) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Update("name", name).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *categoryRepository) CountChildren(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}
