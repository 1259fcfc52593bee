package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/techvault/storefront/internal/domain"
	"go.uber.org/zap"
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	if loc == nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc))

	// Hourly order stats summary for operational visibility.
	_, err := a.sched.AddFunc("@every 1h", a.runOrderStatsJob)
	if err != nil {
		zap.L().Error("failed to register order stats job", zap.Error(err))
	}

	a.sched.Start()
}

// runOrderStatsJob logs order volume and line revenue over the last day.
// Revenue sums per-line subtotals; summing the batch-wide total column
// would count the cart total once per line.
func (a *Application) runOrderStatsJob() {
	since := time.Now().Add(-24 * time.Hour)

	var count int64
	if err := a.gormDB.Model(&domain.Order{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		zap.L().Error("order stats count failed", zap.Error(err))
		return
	}

	var revenue float64
	if err := a.gormDB.Model(&domain.Order{}).
		Where("created_at >= ?", since).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&revenue).Error; err != nil {
		zap.L().Error("order stats revenue failed", zap.Error(err))
		return
	}

	zap.L().Info("daily order stats",
		zap.Int64("orders", count),
		zap.Float64("revenue", revenue))
}
