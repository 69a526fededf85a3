package cron

import (
	"context"
	"event-map/common"
	"event-map/common/constant"
	"event-map/common/metrics"
	"event-map/common/vars"
	"event-map/core/catalog"
	"github.com/spf13/viper"
	"log/slog"
	"time"
)

type CatalogCron struct {
	Cfg    *viper.Viper
	Source catalog.Source
}

// Start refreshes the catalog on every tick until ctx is done. Callers run
// Refresh once before Start so the catalog is populated before serving.
func (in CatalogCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.catalog.refresh.interval"))
	defer refreshTicker.Stop()

	slog.Info("catalog cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.Refresh(ctx)
		case <-ctx.Done():
			slog.Info("catalog cron stopped")
			return
		}
	}
}

// Refresh loads the catalog from the configured source and swaps it in.
// A failed load installs the built-in catalog.
func (in CatalogCron) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.catalog.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing catalog", traceIdAttr)

	events, err := catalog.LoadWithFallback(ctx, in.Source)
	if err != nil {
		slog.WarnContext(ctx, "catalog source failed, using built-in catalog", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		metrics.CatalogRefreshTotal.WithLabelValues("fallback").Inc()
	} else {
		metrics.CatalogRefreshTotal.WithLabelValues("ok").Inc()
	}

	vars.SetCatalog(events)
	metrics.CatalogSize.Set(float64(len(events)))

	slog.DebugContext(ctx, "catalog refreshed successfully", traceIdAttr, slog.Int("events", len(events)))
}
