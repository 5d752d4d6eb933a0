package repository

import (
	"context"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentRepository covers the storefront content tables: banners, header
// and footer links, and keyed text sections.
type ContentRepository interface {
	ListBanners(ctx context.Context) ([]model.Banner, error)
	CreateBanner(ctx context.Context, b *model.Banner) error
	UpdateBanner(ctx context.Context, b *model.Banner) error
	FindBannerByID(ctx context.Context, id uuid.UUID) (*model.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	ListHeaderLinks(ctx context.Context) ([]model.HeaderLink, error)
	CreateHeaderLink(ctx context.Context, l *model.HeaderLink) error
	DeleteHeaderLink(ctx context.Context, id uuid.UUID) error

	ListFooterLinks(ctx context.Context) ([]model.FooterLink, error)
	CreateFooterLink(ctx context.Context, l *model.FooterLink) error
	DeleteFooterLink(ctx context.Context, id uuid.UUID) error

	FindTextSectionByKey(ctx context.Context, key string) (*model.TextSection, error)
	UpsertTextSection(ctx context.Context, s *model.TextSection) error
}

type contentRepo struct{ db *gorm.DB }

func NewContentRepository(db *gorm.DB) ContentRepository { return &contentRepo{db: db} }

func (r *contentRepo) ListBanners(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).Preload("Product").Order("sort_order ASC").Find(&banners).Error
	return banners, err
}

func (r *contentRepo) CreateBanner(ctx context.Context, b *model.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *contentRepo) UpdateBanner(ctx context.Context, b *model.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *contentRepo) FindBannerByID(ctx context.Context, id uuid.UUID) (*model.Banner, error) {
	var b model.Banner
	err := r.db.WithContext(ctx).Preload("Product").First(&b, id).Error
	return &b, err
}

func (r *contentRepo) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, id).Error
}

func (r *contentRepo) ListHeaderLinks(ctx context.Context) ([]model.HeaderLink, error) {
	var links []model.HeaderLink
	err := r.db.WithContext(ctx).Preload("Category").Order("sort_order ASC").Find(&links).Error
	return links, err
}

func (r *contentRepo) CreateHeaderLink(ctx context.Context, l *model.HeaderLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *contentRepo) DeleteHeaderLink(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.HeaderLink{}, id).Error
}

func (r *contentRepo) ListFooterLinks(ctx context.Context) ([]model.FooterLink, error) {
	var links []model.FooterLink
	err := r.db.WithContext(ctx).Order("\"column\" ASC, sort_order ASC").Find(&links).Error
	return links, err
}

func (r *contentRepo) CreateFooterLink(ctx context.Context, l *model.FooterLink) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *contentRepo) DeleteFooterLink(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FooterLink{}, id).Error
}

func (r *contentRepo) FindTextSectionByKey(ctx context.Context, key string) (*model.TextSection, error) {
	var s model.TextSection
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	return &s, err
}

func (r *contentRepo) UpsertTextSection(ctx context.Context, s *model.TextSection) error {
	existing, err := r.FindTextSectionByKey(ctx, s.Key)
	if err == nil {
		s.ID = existing.ID
		return r.db.WithContext(ctx).Save(s).Error
	}
	return r.db.WithContext(ctx).Create(s).Error
}
