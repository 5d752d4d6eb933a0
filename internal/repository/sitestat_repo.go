package repository

import (
	"context"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteStatRepository interface {
	// Increment upserts the counter row and adds delta to it.
	Increment(ctx context.Context, key string, delta int64) error
	Get(ctx context.Context, key string) (int64, error)
	List(ctx context.Context) ([]model.SiteStat, error)
}

type siteStatRepo struct{ db *gorm.DB }

func NewSiteStatRepository(db *gorm.DB) SiteStatRepository { return &siteStatRepo{db: db} }

func (r *siteStatRepo) Increment(ctx context.Context, key string, delta int64) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("site_stats.value + ?", delta)}),
	}).Create(&model.SiteStat{Key: key, Value: delta}).Error
}

func (r *siteStatRepo) Get(ctx context.Context, key string) (int64, error) {
	var stat model.SiteStat
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&stat).Error
	if err != nil {
		return 0, err
	}
	return stat.Value, nil
}

func (r *siteStatRepo) List(ctx context.Context) ([]model.SiteStat, error) {
	var stats []model.SiteStat
	err := r.db.WithContext(ctx).Order("key ASC").Find(&stats).Error
	return stats, err
}
