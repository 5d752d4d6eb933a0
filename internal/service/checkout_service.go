package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/infra"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrEmptyCart is returned when checkout is attempted on an empty cart.
var ErrEmptyCart = errors.New("o carrinho está vazio")

// StockError names the exact line that could not be fulfilled so the
// storefront can point the customer at it.
type StockError struct {
	Product   string
	Size      string
	Available int
	Requested int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s (Tamanho: %s): disponível %d, solicitado %d",
		e.Product, e.Size, e.Available, e.Requested)
}

// CheckoutService converts a session cart into a durable order. Stock is
// validated up front for a friendly error, then decremented with a
// conditional UPDATE inside the transaction, so two concurrent checkouts
// for the last unit cannot both succeed.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error)
}

type checkoutService struct {
	carts      repository.CartStore
	products   repository.ProductRepository
	orders     repository.OrderRepository
	whatsapp   *infra.WhatsAppLinkBuilder
	dispatcher Dispatcher
	now        func() time.Time
}

func NewCheckoutService(
	carts repository.CartStore,
	products repository.ProductRepository,
	orders repository.OrderRepository,
	whatsapp *infra.WhatsAppLinkBuilder,
	dispatcher Dispatcher,
) CheckoutService {
	return &checkoutService{
		carts:      carts,
		products:   products,
		orders:     orders,
		whatsapp:   whatsapp,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string) (*dto.CheckoutResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	// Phase 1: resolve every line and validate stock before touching rows.
	lines, err := s.resolveLines(ctx, cart)
	if err != nil {
		return nil, err
	}

	now := s.now()
	total := decimal.Zero
	items := make([]model.OrderItem, 0, len(lines))
	waLines := make([]infra.OrderLine, 0, len(lines))
	for _, l := range lines {
		unit := CurrentPrice(l.variation.Product, now)
		subtotal := unit.Mul(decimal.NewFromInt(int64(l.qty)))
		total = total.Add(subtotal)
		items = append(items, model.OrderItem{
			VariationID:  l.variation.ID,
			Quantity:     l.qty,
			PricePerItem: unit,
		})
		waLines = append(waLines, infra.OrderLine{
			Quantity: l.qty,
			Product:  l.variation.Product.Name,
			Size:     l.variation.Size,
			Subtotal: subtotal,
		})
	}

	// Phase 2: one transaction for number, order rows and stock.
	order := &model.Order{
		ID:         uuid.New(),
		TotalPrice: total,
		Status:     model.OrderStatusPending,
		Items:      items,
	}
	err = runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		number, err := s.orders.NextOrderNumber(ctx, tx)
		if err != nil {
			return err
		}
		order.Number = number
		waURL := s.whatsapp.BuildOrderLink(number, waLines, total)
		order.WhatsAppURL = &waURL

		if err := s.orders.Create(ctx, tx, order); err != nil {
			return err
		}
		for _, l := range lines {
			if err := s.products.DecrementStockTx(tx, l.variation.ID, l.qty); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					// lost the race since phase 1; report the line
					return &StockError{
						Product:   l.variation.Product.Name,
						Size:      l.variation.Size,
						Requested: l.qty,
					}
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear cart after checkout")
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueSiteStat(ctx, model.StatTotalCheckouts)
	}

	return &dto.CheckoutResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.Number,
		TotalPrice:  total,
		WhatsAppURL: *order.WhatsAppURL,
	}, nil
}

// resolveLines loads every cart variation and pre-validates stock and
// product availability. Order is deterministic on variation id.
func (s *checkoutService) resolveLines(ctx context.Context, cart map[uuid.UUID]int) ([]cartLine, error) {
	ids := sortedVariationIDs(cart)
	lines := make([]cartLine, 0, len(ids))
	for _, variationID := range ids {
		qty := cart[variationID]
		v, err := s.products.FindVariationByID(ctx, variationID)
		if err != nil || v.Product == nil {
			return nil, fmt.Errorf("um item do carrinho não está mais disponível")
		}
		if !v.Product.Active {
			return nil, fmt.Errorf("o produto %s não está mais disponível", v.Product.Name)
		}
		if v.Stock < qty {
			return nil, &StockError{
				Product:   v.Product.Name,
				Size:      v.Size,
				Available: v.Stock,
				Requested: qty,
			}
		}
		lines = append(lines, cartLine{variation: v, qty: qty})
	}
	return lines, nil
}
