package service

import (
	"context"
	"errors"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
)

// ErrCategoryInUse blocks deletion of a category that still has products.
var ErrCategoryInUse = errors.New("não é possível excluir uma categoria que possui produtos associados")

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) slugOwner(ctx context.Context) slugOwnerFn {
	return func(sl string) (uuid.UUID, bool) {
		owner, err := s.repo.FindSlugOwner(ctx, sl)
		if err != nil {
			return uuid.Nil, false
		}
		return owner.ID, true
	}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	var warning *string
	c.Slug, warning = resolveSlug(c.Name, c.ID, s.slugOwner(ctx))

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	resp.Warning = warning
	return resp, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *toCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, errors.New("categoria não encontrada")
	}
	return toCategoryResponse(c), nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("categoria não encontrada")
	}

	var warning *string
	if req.Name != nil && *req.Name != c.Name {
		c.Name = *req.Name
		c.Slug, warning = resolveSlug(c.Name, c.ID, s.slugOwner(ctx))
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(c)
	resp.Warning = warning
	return resp, nil
}

// Delete refuses to remove a category that still classifies products.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("categoria não encontrada")
	}
	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.repo.Delete(ctx, id)
}

func toCategoryResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}
