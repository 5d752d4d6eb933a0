package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/infra"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrVariationNotFound = errors.New("variação não encontrada")
	ErrVariationMismatch = errors.New("a variação não pertence ao produto informado")
)

// CartService manages session carts. Carts never hold prices: every read
// re-resolves the current price so promotions starting or ending while a
// cart sits idle are always reflected.
type CartService interface {
	Add(ctx context.Context, sessionID string, req dto.AddToCartRequest) (*dto.CartResponse, error)
	Update(ctx context.Context, sessionID string, req dto.UpdateCartRequest) (*dto.CartResponse, error)
	Remove(ctx context.Context, sessionID string, variationID uuid.UUID) (*dto.CartResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	Clear(ctx context.Context, sessionID string) error
}

type cartService struct {
	store      repository.CartStore
	products   repository.ProductRepository
	whatsapp   *infra.WhatsAppLinkBuilder
	dispatcher Dispatcher
	now        func() time.Time
}

func NewCartService(
	store repository.CartStore,
	products repository.ProductRepository,
	whatsapp *infra.WhatsAppLinkBuilder,
	dispatcher Dispatcher,
) CartService {
	return &cartService{store: store, products: products, whatsapp: whatsapp, dispatcher: dispatcher, now: time.Now}
}

// Add puts qty more units of a variation in the cart, capped at the
// variation's current stock counting what the cart already holds.
func (s *cartService) Add(ctx context.Context, sessionID string, req dto.AddToCartRequest) (*dto.CartResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrVariationMismatch
	}
	variationID, err := uuid.Parse(req.VariationID)
	if err != nil {
		return nil, ErrVariationNotFound
	}

	v, err := s.products.FindVariationByID(ctx, variationID)
	if err != nil {
		return nil, ErrVariationNotFound
	}
	if v.ProductID != productID {
		return nil, ErrVariationMismatch
	}
	if v.Product != nil && !v.Product.Active {
		return nil, errors.New("produto indisponível")
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var warnings []string
	want := cart[variationID] + req.Quantity
	if want > v.Stock {
		want = v.Stock
		warnings = append(warnings, fmt.Sprintf(
			"Quantidade ajustada para %d (estoque disponível do tamanho %s).", want, v.Size))
	}
	if want < 1 {
		return nil, repository.ErrInsufficientStock
	}
	if err := s.store.SetQuantity(ctx, sessionID, variationID, want); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueCartAdd(ctx, v.ProductID)
	}

	resp, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp.Warnings = append(warnings, resp.Warnings...)
	return resp, nil
}

// Update replaces quantities wholesale, matching the cart page form.
func (s *cartService) Update(ctx context.Context, sessionID string, req dto.UpdateCartRequest) (*dto.CartResponse, error) {
	var warnings []string
	for rawID, qty := range req.Items {
		variationID, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		if qty < 1 {
			if err := s.store.Remove(ctx, sessionID, variationID); err != nil {
				return nil, err
			}
			continue
		}
		v, err := s.products.FindVariationByID(ctx, variationID)
		if err != nil {
			// variation deleted since it was added; drop the line
			_ = s.store.Remove(ctx, sessionID, variationID)
			continue
		}
		if qty > v.Stock {
			qty = v.Stock
			warnings = append(warnings, fmt.Sprintf(
				"Quantidade ajustada para %d (estoque disponível do tamanho %s).", qty, v.Size))
		}
		if err := s.store.SetQuantity(ctx, sessionID, variationID, qty); err != nil {
			return nil, err
		}
	}
	resp, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp.Warnings = append(warnings, resp.Warnings...)
	return resp, nil
}

func (s *cartService) Remove(ctx context.Context, sessionID string, variationID uuid.UUID) (*dto.CartResponse, error) {
	if err := s.store.Remove(ctx, sessionID, variationID); err != nil {
		return nil, err
	}
	return s.Get(ctx, sessionID)
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, sessionID)
}

// Get renders the cart with live prices. Lines whose variation vanished
// are silently dropped from the response and the store.
func (s *cartService) Get(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := &dto.CartResponse{
		Items:      []dto.CartItemResponse{},
		TotalPrice: decimal.Zero,
	}
	var lines []infra.OrderLine

	ids := sortedVariationIDs(cart)

	for _, variationID := range ids {
		qty := cart[variationID]
		v, err := s.products.FindVariationByID(ctx, variationID)
		if err != nil || v.Product == nil {
			_ = s.store.Remove(ctx, sessionID, variationID)
			continue
		}
		unit := CurrentPrice(v.Product, now)
		subtotal := unit.Mul(decimal.NewFromInt(int64(qty)))

		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID:   v.ProductID.String(),
			ProductName: v.Product.Name,
			ProductSlug: v.Product.Slug,
			Image:       v.Product.Image,
			VariationID: v.ID.String(),
			Size:        v.Size,
			Quantity:    qty,
			UnitPrice:   unit,
			Subtotal:    subtotal,
		})
		resp.ItemCount += qty
		resp.TotalPrice = resp.TotalPrice.Add(subtotal)
		lines = append(lines, infra.OrderLine{
			Quantity: qty,
			Product:  v.Product.Name,
			Size:     v.Size,
			Subtotal: subtotal,
		})
	}

	if len(lines) > 0 {
		resp.WhatsAppPreview = s.whatsapp.BuildCartPreview(lines, resp.TotalPrice)
	}
	return resp, nil
}

// cartLine pairs a cart entry with its resolved variation, for checkout.
type cartLine struct {
	variation *model.Variation
	qty       int
}

// sortedVariationIDs returns the cart's keys in deterministic order so
// rendered messages and order items are stable.
func sortedVariationIDs(cart map[uuid.UUID]int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
