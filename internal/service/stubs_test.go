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

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	variations map[uuid.UUID]*model.Variation
	slugIndex  map[string]uuid.UUID

	viewCounts    map[uuid.UUID]int
	cartAddCounts map[uuid.UUID]int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:      make(map[uuid.UUID]*model.Product),
		variations:    make(map[uuid.UUID]*model.Variation),
		slugIndex:     make(map[string]uuid.UUID),
		viewCounts:    make(map[uuid.UUID]int),
		cartAddCounts: make(map[uuid.UUID]int),
	}
}

// seed registers a product and indexes its variations with back-references.
func (r *stubProductRepo) seed(p *model.Product) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	r.slugIndex[p.Slug] = p.ID
	for i := range p.Variations {
		v := &p.Variations[i]
		if v.ID == uuid.Nil {
			v.ID = uuid.New()
		}
		v.ProductID = p.ID
		v.Product = p
		r.variations[v.ID] = v
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if _, taken := r.slugIndex[p.Slug]; taken {
		return errors.New("duplicate slug")
	}
	r.seed(p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindBySlug(_ context.Context, slug string, activeOnly bool) (*model.Product, error) {
	id, ok := r.slugIndex[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p := r.products[id]
	if activeOnly && !p.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindSlugOwner(_ context.Context, slug string) (*model.Product, error) {
	id, ok := r.slugIndex[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.products[id], nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListActive(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) ListInactive(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if !p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	old, ok := r.products[p.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.slugIndex, old.Slug)
	r.products[p.ID] = p
	r.slugIndex[p.Slug] = p.ID
	return nil
}

func (r *stubProductRepo) ReplaceCategories(_ context.Context, p *model.Product, categories []model.Category) error {
	p.Categories = categories
	return nil
}

func (r *stubProductRepo) FindVariationByID(_ context.Context, id uuid.UUID) (*model.Variation, error) {
	v, ok := r.variations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubProductRepo) CreateVariation(_ context.Context, v *model.Variation) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	p, ok := r.products[v.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Product = p
	p.Variations = append(p.Variations, *v)
	r.variations[v.ID] = &p.Variations[len(p.Variations)-1]
	return nil
}

func (r *stubProductRepo) UpdateVariation(_ context.Context, v *model.Variation) error {
	stored, ok := r.variations[v.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Size = v.Size
	stored.Stock = v.Stock
	return nil
}

func (r *stubProductRepo) DeleteVariation(_ context.Context, id uuid.UUID) error {
	delete(r.variations, id)
	return nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, variationID uuid.UUID, qty int) error {
	v, ok := r.variations[variationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v.Stock < qty {
		return repository.ErrInsufficientStock
	}
	v.Stock -= qty
	return nil
}

func (r *stubProductRepo) IncrementStockTx(_ *gorm.DB, variationID uuid.UUID, qty int) error {
	v, ok := r.variations[variationID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Stock += qty
	return nil
}

func (r *stubProductRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	r.viewCounts[id]++
	return nil
}

func (r *stubProductRepo) IncrementCartAddCount(_ context.Context, id uuid.UUID) error {
	r.cartAddCounts[id]++
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubCartStore is an in-memory CartStore.
type stubCartStore struct {
	carts map[string]map[uuid.UUID]int
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string]map[uuid.UUID]int)}
}

func (s *stubCartStore) Get(_ context.Context, sessionID string) (map[uuid.UUID]int, error) {
	cart := make(map[uuid.UUID]int, len(s.carts[sessionID]))
	for id, qty := range s.carts[sessionID] {
		cart[id] = qty
	}
	return cart, nil
}

func (s *stubCartStore) SetQuantity(_ context.Context, sessionID string, variationID uuid.UUID, qty int) error {
	if s.carts[sessionID] == nil {
		s.carts[sessionID] = make(map[uuid.UUID]int)
	}
	if qty < 1 {
		delete(s.carts[sessionID], variationID)
		return nil
	}
	s.carts[sessionID][variationID] = qty
	return nil
}

func (s *stubCartStore) Remove(_ context.Context, sessionID string, variationID uuid.UUID) error {
	delete(s.carts[sessionID], variationID)
	return nil
}

func (s *stubCartStore) Clear(_ context.Context, sessionID string) error {
	delete(s.carts, sessionID)
	return nil
}

var _ repository.CartStore = (*stubCartStore)(nil)

// stubDispatcher records counter enqueues instead of pushing to Redis.
type stubDispatcher struct {
	views     []uuid.UUID
	cartAdds  []uuid.UUID
	siteStats []string
}

func (d *stubDispatcher) EnqueueProductView(_ context.Context, productID uuid.UUID) error {
	d.views = append(d.views, productID)
	return nil
}

func (d *stubDispatcher) EnqueueCartAdd(_ context.Context, productID uuid.UUID) error {
	d.cartAdds = append(d.cartAdds, productID)
	return nil
}

func (d *stubDispatcher) EnqueueSiteStat(_ context.Context, key string) error {
	d.siteStats = append(d.siteStats, key)
	return nil
}

var _ Dispatcher = (*stubDispatcher)(nil)

// stubOrderRepo is an in-memory OrderRepository. onCreate runs before an
// order row is stored, letting tests interleave writes mid-transaction.
type stubOrderRepo struct {
	orders    map[uuid.UUID]*model.Order
	numberSeq int
	onCreate  func()
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.Order) error {
	if r.onCreate != nil {
		r.onCreate()
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) NextOrderNumber(_ context.Context, _ *gorm.DB) (int, error) {
	r.numberSeq++
	return r.numberSeq, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, _ dto.OrderFilter) ([]model.Order, int64, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string, restocked bool) error {
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	o.Restocked = restocked
	return nil
}

func (r *stubOrderRepo) CountCreatedBetween(_ context.Context, _, _ string) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) CompletedStats(_ context.Context, _, _ string) (int64, decimal.Decimal, error) {
	var count int64
	revenue := decimal.Zero
	for _, o := range r.orders {
		if o.Status == model.OrderStatusCompleted {
			count++
			revenue = revenue.Add(o.TotalPrice)
		}
	}
	return count, revenue, nil
}

func (r *stubOrderRepo) StatusCounts(_ context.Context, _, _ string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// stubCategoryRepo is an in-memory CategoryRepository.
type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
	slugIndex  map[string]uuid.UUID
	productCnt map[uuid.UUID]int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{
		categories: make(map[uuid.UUID]*model.Category),
		slugIndex:  make(map[string]uuid.UUID),
		productCnt: make(map[uuid.UUID]int64),
	}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if _, taken := r.slugIndex[c.Slug]; taken {
		return errors.New("duplicate slug")
	}
	r.categories[c.ID] = c
	r.slugIndex[c.Slug] = c.ID
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*model.Category, error) {
	id, ok := r.slugIndex[slug]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.categories[id], nil
}

func (r *stubCategoryRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Category, error) {
	var out []model.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindSlugOwner(ctx context.Context, slug string) (*model.Category, error) {
	return r.FindBySlug(ctx, slug)
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	old, ok := r.categories[c.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.slugIndex, old.Slug)
	r.categories[c.ID] = c
	r.slugIndex[c.Slug] = c.ID
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	c, ok := r.categories[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.slugIndex, c.Slug)
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) CountProducts(_ context.Context, id uuid.UUID) (int64, error) {
	return r.productCnt[id], nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// stubSiteStatRepo records counter increments.
type stubSiteStatRepo struct {
	counters map[string]int64
}

func newStubSiteStatRepo() *stubSiteStatRepo {
	return &stubSiteStatRepo{counters: make(map[string]int64)}
}

func (r *stubSiteStatRepo) Increment(_ context.Context, key string, delta int64) error {
	r.counters[key] += delta
	return nil
}

func (r *stubSiteStatRepo) Get(_ context.Context, key string) (int64, error) {
	return r.counters[key], nil
}

func (r *stubSiteStatRepo) List(_ context.Context) ([]model.SiteStat, error) {
	out := make([]model.SiteStat, 0, len(r.counters))
	for k, v := range r.counters {
		out = append(out, model.SiteStat{Key: k, Value: v})
	}
	return out, nil
}

var _ repository.SiteStatRepository = (*stubSiteStatRepo)(nil)

// ── Shared fixtures ───────────────────────────────────────────────────────────

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// fixedNow is a stable clock for promotion-window assertions.
var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func activePromotion(percent string) model.Promotion {
	start := fixedNow.Add(-24 * time.Hour)
	end := fixedNow.Add(24 * time.Hour)
	return model.Promotion{
		ID:              uuid.New(),
		Name:            "Promo " + percent,
		IsActive:        true,
		StartDate:       &start,
		EndDate:         &end,
		DiscountPercent: money(percent),
	}
}
