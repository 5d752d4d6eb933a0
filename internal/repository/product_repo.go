package repository

import (
	"context"
	"errors"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by the conditional stock decrement when
// the row no longer holds enough units. It is the transactional backstop
// behind the pre-flight validation in checkout.
var ErrInsufficientStock = errors.New("estoque insuficiente")

// ProductRepository defines the data access contract for products and their
// variations. Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Product, error)
	// FindSlugOwner returns the product currently holding slug, if any.
	// Used by the slug-collision check on create/rename.
	FindSlugOwner(ctx context.Context, slug string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	ListActive(ctx context.Context) ([]model.Product, error)
	ListInactive(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	ReplaceCategories(ctx context.Context, p *model.Product, categories []model.Category) error

	// Variations
	FindVariationByID(ctx context.Context, id uuid.UUID) (*model.Variation, error)
	CreateVariation(ctx context.Context, v *model.Variation) error
	UpdateVariation(ctx context.Context, v *model.Variation) error
	DeleteVariation(ctx context.Context, id uuid.UUID) error

	// Stock — used inside transactions; callers must pass the tx instance.
	// DecrementStockTx applies "stock = stock - qty iff stock >= qty" and
	// returns ErrInsufficientStock when the condition fails.
	DecrementStockTx(tx *gorm.DB, variationID uuid.UUID, qty int) error
	IncrementStockTx(tx *gorm.DB, variationID uuid.UUID, qty int) error

	// Engagement counters, incremented by the async counter worker.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementCartAddCount(ctx context.Context, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Preload("Variations").Preload("Categories").Preload("Promotions").
		First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindBySlug(ctx context.Context, slug string, activeOnly bool) (*model.Product, error) {
	q := r.db.WithContext(ctx).
		Preload("Variations").Preload("Categories").Preload("Promotions").
		Where("slug = ?", slug)
	if activeOnly {
		q = q.Where("active = true")
	}
	var p model.Product
	err := q.First(&p).Error
	return &p, err
}

func (r *productRepo) FindSlugOwner(ctx context.Context, slug string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	// Active filter: "false" = inactives, "all" = everything, default actives
	switch filter.Active {
	case "false":
		q = q.Where("active = false")
	case "all":
		// no filter
	default:
		q = q.Where("active = true")
	}

	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Category != "" {
		q = q.Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.slug = ?", filter.Category)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Variations").Preload("Categories").Preload("Promotions").
		Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) ListActive(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Variations").Preload("Promotions").
		Where("active = true").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) ListInactive(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Variations").
		Where("active = false").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) ReplaceCategories(ctx context.Context, p *model.Product, categories []model.Category) error {
	return r.db.WithContext(ctx).Model(p).Association("Categories").Replace(categories)
}

func (r *productRepo) FindVariationByID(ctx context.Context, id uuid.UUID) (*model.Variation, error) {
	var v model.Variation
	err := r.db.WithContext(ctx).
		Preload("Product").Preload("Product.Promotions").
		First(&v, id).Error
	return &v, err
}

func (r *productRepo) CreateVariation(ctx context.Context, v *model.Variation) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *productRepo) UpdateVariation(ctx context.Context, v *model.Variation) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *productRepo) DeleteVariation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Variation{}, id).Error
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, variationID uuid.UUID, qty int) error {
	res := tx.Model(&model.Variation{}).
		Where("id = ? AND stock >= ?", variationID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *productRepo) IncrementStockTx(tx *gorm.DB, variationID uuid.UUID, qty int) error {
	return tx.Model(&model.Variation{}).Where("id = ?", variationID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

func (r *productRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *productRepo) IncrementCartAddCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).
		Update("cart_add_count", gorm.Expr("cart_add_count + 1")).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
