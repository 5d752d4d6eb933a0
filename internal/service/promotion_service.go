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

type PromotionService interface {
	Create(ctx context.Context, req dto.CreatePromotionRequest) (*dto.PromotionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PromotionResponse, error)
	List(ctx context.Context) ([]dto.PromotionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePromotionRequest) (*dto.PromotionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionService struct {
	repo repository.PromotionRepository
	now  func() time.Time
}

func NewPromotionService(repo repository.PromotionRepository) PromotionService {
	return &promotionService{repo: repo, now: time.Now}
}

func (s *promotionService) Create(ctx context.Context, req dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if err := validateWindow(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	p := &model.Promotion{
		ID:              uuid.New(),
		Name:            req.Name,
		IsActive:        req.IsActive,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		DiscountPercent: req.DiscountPercent,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if len(req.ProductIDs) > 0 {
		if err := s.attachProducts(ctx, p, req.ProductIDs); err != nil {
			return nil, err
		}
	}
	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(created), nil
}

func (s *promotionService) attachProducts(ctx context.Context, p *model.Promotion, ids []string) error {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("product_id inválido: %w", err)
		}
		parsed = append(parsed, id)
	}
	products, err := s.repo.FindProductsByIDs(ctx, parsed)
	if err != nil {
		return err
	}
	if len(products) != len(parsed) {
		return errors.New("um ou mais produtos não existem")
	}
	return s.repo.ReplaceProducts(ctx, p, products)
}

func (s *promotionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PromotionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("promoção não encontrada")
	}
	return s.toResponse(p), nil
}

func (s *promotionService) List(ctx context.Context) ([]dto.PromotionResponse, error) {
	promotions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(promotions))
	for i := range promotions {
		out = append(out, *s.toResponse(&promotions[i]))
	}
	return out, nil
}

func (s *promotionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("promoção não encontrada")
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = req.EndDate
	}
	if req.DiscountPercent != nil {
		p.DiscountPercent = *req.DiscountPercent
	}
	if err := validateWindow(p.StartDate, p.EndDate); err != nil {
		return nil, err
	}

	p.Products = nil // associations are replaced explicitly below
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	if req.ProductIDs != nil {
		if err := s.attachProducts(ctx, p, req.ProductIDs); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(updated), nil
}

func (s *promotionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("promoção não encontrada")
	}
	return s.repo.Delete(ctx, id)
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return errors.New("a data final deve ser posterior à data inicial")
	}
	return nil
}

func (s *promotionService) toResponse(p *model.Promotion) *dto.PromotionResponse {
	productIDs := make([]string, 0, len(p.Products))
	for _, prod := range p.Products {
		productIDs = append(productIDs, prod.ID.String())
	}
	return &dto.PromotionResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		IsActive:        p.IsActive,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		DiscountPercent: p.DiscountPercent,
		CurrentlyActive: p.IsCurrentlyActive(s.now()),
		ProductIDs:      productIDs,
	}
}
