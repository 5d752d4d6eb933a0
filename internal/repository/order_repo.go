package repository

import (
	"context"

	"github.com/LandLandeiro/oba-moda-afro/internal/dto"
	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, o *model.Order) error
	NextOrderNumber(ctx context.Context, tx *gorm.DB) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error)
	// UpdateStatusTx persists a status transition plus the restocked flag
	// inside the caller's transaction.
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string, restocked bool) error

	// Dashboard aggregates
	CountCreatedBetween(ctx context.Context, from, to string) (int64, error)
	CompletedStats(ctx context.Context, from, to string) (int64, decimal.Decimal, error)
	StatusCounts(ctx context.Context, from, to string) (map[string]int64, error)

	// DB exposes the DB for transaction creation in the service layer.
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) DB() *gorm.DB { return r.db }

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, o *model.Order) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) NextOrderNumber(ctx context.Context, tx *gorm.DB) (int, error) {
	// Uses a PostgreSQL sequence for atomic order number generation
	var num int
	err := tx.WithContext(ctx).Raw("SELECT nextval('orders_number_seq')").Scan(&num).Error
	return num, err
}

func (r *orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Variation.Product").
		First(&o, id).Error
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != "" {
		q = q.Where("DATE(created_at) >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("DATE(created_at) <= ?", filter.To)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Items.Variation.Product").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string, restocked bool) error {
	return tx.Model(&model.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "restocked": restocked}).Error
}

func (r *orderRepo) CountCreatedBetween(ctx context.Context, from, to string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("DATE(created_at) BETWEEN ? AND ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *orderRepo) CompletedStats(ctx context.Context, from, to string) (int64, decimal.Decimal, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", model.OrderStatusCompleted).
		Where("DATE(created_at) BETWEEN ? AND ?", from, to)
	if err := q.Count(&count).Error; err != nil {
		return 0, decimal.Zero, err
	}
	// Summed as numeric end to end; a float here would lose cents.
	var row struct{ Revenue decimal.Decimal }
	err := q.Select("COALESCE(SUM(total_price), 0) AS revenue").Scan(&row).Error
	return count, row.Revenue, err
}

func (r *orderRepo) StatusCounts(ctx context.Context, from, to string) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(id) AS count").
		Where("DATE(created_at) BETWEEN ? AND ?", from, to).
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
