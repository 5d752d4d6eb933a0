package service

import (
	"context"
	"errors"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"
	"github.com/LandLandeiro/oba-moda-afro/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LowStockThreshold marks products the dashboard flags for replenishment.
const LowStockThreshold = 5

var ErrOrderNotFound = errors.New("pedido não encontrado")

// OrderService is the back-office view over orders. Status transitions
// drive the restock machine: leaving cancelado re-subtracts stock, and
// entering cancelado credits it back exactly once.
type OrderService interface {
	List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error)
	Dashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error)
}

type orderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	stats    repository.SiteStatRepository
	now      func() time.Time
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	stats repository.SiteStatRepository,
) OrderService {
	return &orderService{orders: orders, products: products, stats: stats, now: time.Now}
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *toOrderResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return toOrderResponse(o), nil
}

// UpdateStatus applies a transition. Moving into cancelado credits the
// items back to stock (once; the restocked flag makes it idempotent).
// Moving out of cancelado after a restock re-subtracts stock with the
// conditional decrement; if any line no longer fits, the order is forced
// back to cancelado and the response carries a warning instead of an
// error.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if o.Status == status {
		return toOrderResponse(o), nil
	}

	var warning *string
	err = runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		switch {
		case status == model.OrderStatusCancelled && !o.Restocked:
			for _, item := range o.Items {
				if err := s.products.IncrementStockTx(tx, item.VariationID, item.Quantity); err != nil {
					return err
				}
			}
			return s.orders.UpdateStatusTx(tx, o.ID, status, true)

		case o.Status == model.OrderStatusCancelled && o.Restocked:
			// leaving cancelado: take the stock back, all or nothing
			for _, item := range o.Items {
				if err := s.products.DecrementStockTx(tx, item.VariationID, item.Quantity); err != nil {
					if errors.Is(err, repository.ErrInsufficientStock) {
						msg := "Não há estoque suficiente para reativar o pedido; ele permanece cancelado."
						warning = &msg
						return errRollbackOnly
					}
					return err
				}
			}
			return s.orders.UpdateStatusTx(tx, o.ID, status, false)

		default:
			// plain transition, stock untouched (ex: pendente → concluido,
			// or re-cancelling an already restocked order)
			return s.orders.UpdateStatusTx(tx, o.ID, status, o.Restocked)
		}
	})
	if err != nil && !errors.Is(err, errRollbackOnly) {
		return nil, err
	}

	updated, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(updated)
	resp.Warning = warning
	return resp, nil
}

// errRollbackOnly aborts the transaction without surfacing an error to
// the caller. Used when a re-activation is rejected for lack of stock.
var errRollbackOnly = errors.New("rollback")

func (s *orderService) Dashboard(ctx context.Context, filter dto.DashboardFilter) (*dto.DashboardResponse, error) {
	to := filter.To
	if to == "" {
		to = s.now().Format("2006-01-02")
	}
	from := filter.From
	if from == "" {
		toDate, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, errors.New("data inválida, use o formato AAAA-MM-DD")
		}
		from = toDate.AddDate(0, 0, -30).Format("2006-01-02")
	}

	totalLeads, err := s.orders.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	completed, revenue, err := s.orders.CompletedStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	statusCounts, err := s.orders.StatusCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	conversion := decimal.Zero
	if totalLeads > 0 {
		conversion = decimal.NewFromInt(completed).
			Div(decimal.NewFromInt(totalLeads)).
			Mul(decimal.NewFromInt(100)).Round(1)
	}

	lowStock, outOfStock, err := s.stockAlerts(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		From:            from,
		To:              to,
		TotalLeads:      totalLeads,
		CompletedOrders: completed,
		Revenue:         revenue.Round(2),
		ConversionRate:  conversion,
		StatusCounts:    statusCounts,
		LowStock:        lowStock,
		OutOfStock:      outOfStock,
	}, nil
}

func (s *orderService) stockAlerts(ctx context.Context) (low, out []dto.LowStockProduct, err error) {
	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	low = []dto.LowStockProduct{}
	out = []dto.LowStockProduct{}
	for i := range products {
		p := &products[i]
		total := p.TotalStock()
		entry := dto.LowStockProduct{
			ID:         p.ID.String(),
			Name:       p.Name,
			Slug:       p.Slug,
			TotalStock: total,
			Active:     p.Active,
		}
		switch {
		case total == 0:
			out = append(out, entry)
		case total <= LowStockThreshold:
			low = append(low, entry)
		}
	}
	return low, out, nil
}

func toOrderResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		name, size := "?", "?"
		if item.Variation != nil {
			size = item.Variation.Size
			if item.Variation.Product != nil {
				name = item.Variation.Product.Name
			}
		}
		items = append(items, dto.OrderItemResponse{
			VariationID:  item.VariationID.String(),
			Product:      name,
			Size:         size,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
			Subtotal:     item.PricePerItem.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return &dto.OrderResponse{
		ID:           o.ID.String(),
		Number:       o.Number,
		Status:       o.Status,
		Restocked:    o.Restocked,
		TotalPrice:   o.TotalPrice,
		ItemsSummary: o.ItemsSummary(),
		WhatsAppURL:  o.WhatsAppURL,
		Items:        items,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}
