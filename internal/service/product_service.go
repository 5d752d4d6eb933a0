package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
)

// ProductService covers both the public catalog and the back-office
// product CRUD, including slug assignment on every create/rename.
type ProductService interface {
	// Public storefront
	ListActive(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)

	// Back office
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Duplicate(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	AddVariation(ctx context.Context, productID uuid.UUID, req dto.VariationRequest) (*dto.ProductResponse, error)
	UpdateVariation(ctx context.Context, variationID uuid.UUID, req dto.UpdateVariationRequest) error
	DeleteVariation(ctx context.Context, variationID uuid.UUID) error
}

type productService struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	dispatcher Dispatcher
	now        func() time.Time
}

func NewProductService(
	repo repository.ProductRepository,
	categories repository.CategoryRepository,
	dispatcher Dispatcher,
) ProductService {
	return &productService{repo: repo, categories: categories, dispatcher: dispatcher, now: time.Now}
}

// productSlugOwner adapts the repository lookup to the slug resolver.
func (s *productService) productSlugOwner(ctx context.Context) slugOwnerFn {
	return func(sl string) (uuid.UUID, bool) {
		owner, err := s.repo.FindSlugOwner(ctx, sl)
		if err != nil {
			return uuid.Nil, false
		}
		return owner.ID, true
	}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		// Generate the id up front so slug disambiguation can use it.
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Active:      true,
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	desired := req.Name
	if req.Slug != "" {
		desired = req.Slug
	}
	slugValue, warning := resolveSlug(desired, p.ID, s.productSlugOwner(ctx))
	p.Slug = slugValue

	for _, v := range req.Variations {
		p.Variations = append(p.Variations, model.Variation{Size: v.Size, Stock: v.Stock})
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if len(req.CategoryIDs) > 0 {
		if err := s.attachCategories(ctx, p, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(created)
	resp.Warning = warning
	return resp, nil
}

func (s *productService) attachCategories(ctx context.Context, p *model.Product, ids []string) error {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("category_id inválido: %w", err)
		}
		parsed = append(parsed, id)
	}
	categories, err := s.categories.FindByIDs(ctx, parsed)
	if err != nil {
		return err
	}
	if len(categories) != len(parsed) {
		return errors.New("uma ou mais categorias não existem")
	}
	return s.repo.ReplaceCategories(ctx, p, categories)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}
	return s.toResponse(p), nil
}

// GetBySlug serves the public product page and bumps the view counter
// off the request path.
func (s *productService) GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueProductView(ctx, p.ID)
	}
	return s.toResponse(p), nil
}

// ListActive serves the storefront home page, so it also counts the
// visit off the request path.
func (s *productService) ListActive(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	filter.Active = "" // public listing never sees inactive products
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSiteStat(ctx, model.StatTotalVisits)
	}
	return s.List(ctx, filter)
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *s.toResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	renamed := false
	if req.Name != nil && *req.Name != p.Name {
		p.Name = *req.Name
		renamed = true
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Image != nil {
		p.Image = req.Image
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	var warning *string
	if req.Slug != nil && *req.Slug != "" {
		p.Slug, warning = resolveSlug(*req.Slug, p.ID, s.productSlugOwner(ctx))
	} else if renamed {
		p.Slug, warning = resolveSlug(p.Name, p.ID, s.productSlugOwner(ctx))
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if req.CategoryIDs != nil {
		if err := s.attachCategories(ctx, p, req.CategoryIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := s.toResponse(updated)
	resp.Warning = warning
	return resp, nil
}

// Duplicate clones a product for the back office: " (Cópia)" suffix,
// fresh slug, inactive until reviewed, variations copied with stock.
func (s *productService) Duplicate(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	src, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}

	clone := &model.Product{
		ID:          uuid.New(),
		Name:        src.Name + " (Cópia)",
		Description: src.Description,
		Price:       src.Price,
		Image:       src.Image,
		Active:      false,
	}
	clone.Slug, _ = resolveSlug(clone.Name, clone.ID, s.productSlugOwner(ctx))
	for _, v := range src.Variations {
		clone.Variations = append(clone.Variations, model.Variation{Size: v.Size, Stock: v.Stock})
	}

	if err := s.repo.Create(ctx, clone); err != nil {
		return nil, err
	}
	if len(src.Categories) > 0 {
		if err := s.repo.ReplaceCategories(ctx, clone, src.Categories); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.FindByID(ctx, clone.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(created), nil
}

func (s *productService) AddVariation(ctx context.Context, productID uuid.UUID, req dto.VariationRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.New("produto não encontrado")
	}
	v := &model.Variation{ProductID: p.ID, Size: req.Size, Stock: req.Stock}
	if err := s.repo.CreateVariation(ctx, v); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated), nil
}

func (s *productService) UpdateVariation(ctx context.Context, variationID uuid.UUID, req dto.UpdateVariationRequest) error {
	v, err := s.repo.FindVariationByID(ctx, variationID)
	if err != nil {
		return errors.New("variação não encontrada")
	}
	if req.Size != nil {
		v.Size = *req.Size
	}
	if req.Stock != nil {
		v.Stock = *req.Stock
	}
	v.Product = nil // avoid re-saving the preloaded association
	return s.repo.UpdateVariation(ctx, v)
}

func (s *productService) DeleteVariation(ctx context.Context, variationID uuid.UUID) error {
	if _, err := s.repo.FindVariationByID(ctx, variationID); err != nil {
		return errors.New("variação não encontrada")
	}
	return s.repo.DeleteVariation(ctx, variationID)
}

func (s *productService) toResponse(p *model.Product) *dto.ProductResponse {
	now := s.now()
	variations := make([]dto.VariationResponse, 0, len(p.Variations))
	for _, v := range p.Variations {
		variations = append(variations, dto.VariationResponse{ID: v.ID.String(), Size: v.Size, Stock: v.Stock})
	}
	categories := make([]dto.CategoryRef, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, dto.CategoryRef{ID: c.ID.String(), Name: c.Name, Slug: c.Slug})
	}
	return &dto.ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CurrentPrice: CurrentPrice(p, now),
		OnSale:       IsOnSale(p, now),
		Image:        p.Image,
		Slug:         p.Slug,
		Active:       p.Active,
		TotalStock:   p.TotalStock(),
		ViewCount:    p.ViewCount,
		CartAddCount: p.CartAddCount,
		Variations:   variations,
		Categories:   categories,
	}
}
