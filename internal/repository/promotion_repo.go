package repository

import (
	"context"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(ctx context.Context, p *model.Promotion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error)
	FindByName(ctx context.Context, name string) (*model.Promotion, error)
	List(ctx context.Context) ([]model.Promotion, error)
	Update(ctx context.Context, p *model.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceProducts(ctx context.Context, p *model.Promotion, products []model.Product) error
	FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
}

type promotionRepo struct{ db *gorm.DB }

func NewPromotionRepository(db *gorm.DB) PromotionRepository { return &promotionRepo{db: db} }

func (r *promotionRepo) Create(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *promotionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).Preload("Products").First(&p, id).Error
	return &p, err
}

func (r *promotionRepo) FindByName(ctx context.Context, name string) (*model.Promotion, error) {
	var p model.Promotion
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	return &p, err
}

func (r *promotionRepo) List(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	err := r.db.WithContext(ctx).Preload("Products").Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepo) Update(ctx context.Context, p *model.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *promotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Products").Delete(&model.Promotion{ID: id}).Error
}

func (r *promotionRepo) ReplaceProducts(ctx context.Context, p *model.Promotion, products []model.Product) error {
	return r.db.WithContext(ctx).Model(p).Association("Products").Replace(products)
}

func (r *promotionRepo) FindProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}
