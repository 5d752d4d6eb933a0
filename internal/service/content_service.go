package service

import (
	"context"
	"errors"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
)

// ContentService manages the storefront content edited from the back
// office: banner carousel, navigation links and keyed text sections.
type ContentService interface {
	ListBanners(ctx context.Context) ([]dto.BannerResponse, error)
	CreateBanner(ctx context.Context, req dto.BannerRequest) (*dto.BannerResponse, error)
	UpdateBanner(ctx context.Context, id uuid.UUID, req dto.BannerRequest) (*dto.BannerResponse, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	ListHeaderLinks(ctx context.Context) ([]dto.HeaderLinkResponse, error)
	CreateHeaderLink(ctx context.Context, req dto.HeaderLinkRequest) (*dto.HeaderLinkResponse, error)
	DeleteHeaderLink(ctx context.Context, id uuid.UUID) error

	ListFooterLinks(ctx context.Context) ([]dto.FooterLinkResponse, error)
	CreateFooterLink(ctx context.Context, req dto.FooterLinkRequest) (*dto.FooterLinkResponse, error)
	DeleteFooterLink(ctx context.Context, id uuid.UUID) error

	GetTextSection(ctx context.Context, key string) (*dto.TextSectionResponse, error)
	UpsertTextSection(ctx context.Context, req dto.TextSectionRequest) (*dto.TextSectionResponse, error)
}

type contentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) ListBanners(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := s.repo.ListBanners(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BannerResponse, 0, len(banners))
	for i := range banners {
		out = append(out, *toBannerResponse(&banners[i]))
	}
	return out, nil
}

func (s *contentService) CreateBanner(ctx context.Context, req dto.BannerRequest) (*dto.BannerResponse, error) {
	b := &model.Banner{
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		ImageURLDesktop: req.ImageURLDesktop,
		ImageURLMobile:  req.ImageURLMobile,
		LinkURL:         req.LinkURL,
		SortOrder:       req.SortOrder,
	}
	if req.ProductID != nil {
		id, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return nil, errors.New("product_id inválido")
		}
		b.ProductID = &id
	}
	if err := s.repo.CreateBanner(ctx, b); err != nil {
		return nil, err
	}
	created, err := s.repo.FindBannerByID(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	return toBannerResponse(created), nil
}

func (s *contentService) UpdateBanner(ctx context.Context, id uuid.UUID, req dto.BannerRequest) (*dto.BannerResponse, error) {
	b, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, errors.New("banner não encontrado")
	}
	b.Title = req.Title
	b.Subtitle = req.Subtitle
	b.ImageURLDesktop = req.ImageURLDesktop
	b.ImageURLMobile = req.ImageURLMobile
	b.LinkURL = req.LinkURL
	b.SortOrder = req.SortOrder
	b.ProductID = nil
	b.Product = nil
	if req.ProductID != nil {
		pid, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return nil, errors.New("product_id inválido")
		}
		b.ProductID = &pid
	}
	if err := s.repo.UpdateBanner(ctx, b); err != nil {
		return nil, err
	}
	updated, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBannerResponse(updated), nil
}

func (s *contentService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindBannerByID(ctx, id); err != nil {
		return errors.New("banner não encontrado")
	}
	return s.repo.DeleteBanner(ctx, id)
}

func (s *contentService) ListHeaderLinks(ctx context.Context) ([]dto.HeaderLinkResponse, error) {
	links, err := s.repo.ListHeaderLinks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HeaderLinkResponse, 0, len(links))
	for _, l := range links {
		resp := dto.HeaderLinkResponse{
			ID:        l.ID.String(),
			Name:      l.Name,
			SortOrder: l.SortOrder,
		}
		if l.Category != nil {
			slug := l.Category.Slug
			resp.CategorySlug = &slug
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *contentService) CreateHeaderLink(ctx context.Context, req dto.HeaderLinkRequest) (*dto.HeaderLinkResponse, error) {
	l := &model.HeaderLink{Name: req.Name, SortOrder: req.SortOrder}
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, errors.New("category_id inválido")
		}
		l.CategoryID = &id
	}
	if err := s.repo.CreateHeaderLink(ctx, l); err != nil {
		return nil, err
	}
	return &dto.HeaderLinkResponse{ID: l.ID.String(), Name: l.Name, SortOrder: l.SortOrder}, nil
}

func (s *contentService) DeleteHeaderLink(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteHeaderLink(ctx, id)
}

func (s *contentService) ListFooterLinks(ctx context.Context) ([]dto.FooterLinkResponse, error) {
	links, err := s.repo.ListFooterLinks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FooterLinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, dto.FooterLinkResponse{
			ID:        l.ID.String(),
			Title:     l.Title,
			FinalURL:  l.FinalURL(),
			SortOrder: l.SortOrder,
			Column:    l.Column,
		})
	}
	return out, nil
}

func (s *contentService) CreateFooterLink(ctx context.Context, req dto.FooterLinkRequest) (*dto.FooterLinkResponse, error) {
	l := &model.FooterLink{Title: req.Title, URL: req.URL, SortOrder: req.SortOrder, Column: req.Column}
	if l.URL == "" {
		l.URL = "#"
	}
	if err := s.repo.CreateFooterLink(ctx, l); err != nil {
		return nil, err
	}
	return &dto.FooterLinkResponse{
		ID:        l.ID.String(),
		Title:     l.Title,
		FinalURL:  l.FinalURL(),
		SortOrder: l.SortOrder,
		Column:    l.Column,
	}, nil
}

func (s *contentService) DeleteFooterLink(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFooterLink(ctx, id)
}

func (s *contentService) GetTextSection(ctx context.Context, key string) (*dto.TextSectionResponse, error) {
	sec, err := s.repo.FindTextSectionByKey(ctx, key)
	if err != nil {
		return nil, errors.New("seção não encontrada")
	}
	return &dto.TextSectionResponse{ID: sec.ID.String(), Key: sec.Key, Title: sec.Title, Content: sec.Content}, nil
}

func (s *contentService) UpsertTextSection(ctx context.Context, req dto.TextSectionRequest) (*dto.TextSectionResponse, error) {
	sec := &model.TextSection{Key: req.Key, Title: req.Title, Content: req.Content}
	if err := s.repo.UpsertTextSection(ctx, sec); err != nil {
		return nil, err
	}
	return &dto.TextSectionResponse{ID: sec.ID.String(), Key: sec.Key, Title: sec.Title, Content: sec.Content}, nil
}

func toBannerResponse(b *model.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		Subtitle:        b.Subtitle,
		ImageURLDesktop: b.ImageURLDesktop,
		ImageURLMobile:  b.ImageURLMobile,
		FinalLinkURL:    b.FinalLinkURL(),
		SortOrder:       b.SortOrder,
	}
}
