package service

import (
	"testing"
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCurrentPrice_NoPromotion(t *testing.T) {
	p := &model.Product{Price: money("100.00")}
	assert.True(t, money("100.00").Equal(CurrentPrice(p, fixedNow)))
	assert.False(t, IsOnSale(p, fixedNow))
}

func TestCurrentPrice_ActivePromotionApplied(t *testing.T) {
	p := &model.Product{
		Price:      money("100.00"),
		Promotions: []model.Promotion{activePromotion("10")},
	}
	assert.True(t, money("90.00").Equal(CurrentPrice(p, fixedNow)))
	assert.True(t, IsOnSale(p, fixedNow))
}

func TestCurrentPrice_RoundsToTwoDecimals(t *testing.T) {
	// 59.90 * (1 - 15/100) = 50.915 → 50.92 (half away from zero)
	p := &model.Product{
		Price:      money("59.90"),
		Promotions: []model.Promotion{activePromotion("15")},
	}
	assert.Equal(t, "50.92", CurrentPrice(p, fixedNow).StringFixed(2))
}

func TestCurrentPrice_FirstActivePromotionWins(t *testing.T) {
	p := &model.Product{
		Price:      money("100.00"),
		Promotions: []model.Promotion{activePromotion("20"), activePromotion("50")},
	}
	assert.True(t, money("80.00").Equal(CurrentPrice(p, fixedNow)))
}

func TestCurrentPrice_InactiveAndExpiredPromotionsSkipped(t *testing.T) {
	expiredEnd := fixedNow.Add(-time.Hour)
	futureStart := fixedNow.Add(time.Hour)
	p := &model.Product{
		Price: money("100.00"),
		Promotions: []model.Promotion{
			{ID: uuid.New(), IsActive: false, DiscountPercent: money("50")},
			{ID: uuid.New(), IsActive: true, EndDate: &expiredEnd, DiscountPercent: money("50")},
			{ID: uuid.New(), IsActive: true, StartDate: &futureStart, DiscountPercent: money("50")},
		},
	}
	assert.True(t, money("100.00").Equal(CurrentPrice(p, fixedNow)))
	assert.False(t, IsOnSale(p, fixedNow))
}

func TestCurrentPrice_OpenEndedWindow(t *testing.T) {
	// nil bounds never expire
	p := &model.Product{
		Price: money("80.00"),
		Promotions: []model.Promotion{
			{ID: uuid.New(), IsActive: true, DiscountPercent: money("25")},
		},
	}
	assert.True(t, money("60.00").Equal(CurrentPrice(p, fixedNow)))
}

func TestCurrentPrice_HundredPercentDiscount(t *testing.T) {
	p := &model.Product{
		Price:      money("49.90"),
		Promotions: []model.Promotion{activePromotion("100")},
	}
	assert.True(t, CurrentPrice(p, fixedNow).IsZero())
}

func TestIsCurrentlyActive_WindowEdges(t *testing.T) {
	start := fixedNow
	end := fixedNow.Add(time.Hour)
	promo := model.Promotion{IsActive: true, StartDate: &start, EndDate: &end}

	// inclusive on both bounds
	assert.True(t, promo.IsCurrentlyActive(start))
	assert.True(t, promo.IsCurrentlyActive(end))
	assert.False(t, promo.IsCurrentlyActive(start.Add(-time.Second)))
	assert.False(t, promo.IsCurrentlyActive(end.Add(time.Second)))
}
