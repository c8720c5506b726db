package cron

import (
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"kerala-tours/catalog"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/vars"
	"kerala-tours/outbound/sqlgen"
	"log/slog"
	"strconv"
	"time"
)

// PackageCron mirrors the per package paid booking counters from redis into
// the in-process snapshot read by the package detail endpoint.
type PackageCron struct {
	Cfg     *viper.Viper
	Cache   *redis.Client
	Querier *sqlgen.Queries
	Catalog *catalog.Catalog
}

func (in PackageCron) Start(ctx context.Context) {
	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.package.refresh.interval"))
	defer refreshTicker.Stop()

	in.refresh(ctx)

	slog.Info("package cron started")

	for {
		select {
		case <-refreshTicker.C:
			in.refresh(ctx)
		case <-ctx.Done():
			slog.Info("package cron stopped")
			return
		}
	}
}

func (in PackageCron) refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.package.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "refreshing package booking counts", traceIdAttr)

	packages := in.Catalog.Packages()
	if len(packages) == 0 {
		return
	}

	keys := make([]string, 0, len(packages))
	for _, pkg := range packages {
		keys = append(keys, fmt.Sprintf(constant.EachPackageBookingsKey, pkg.Id))
	}

	values, err := in.Cache.MGet(ctx, keys...).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get booking counts from cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}

	counts := make(map[string]int64, len(packages))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok || raw == "" {
			continue
		}

		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert booking count to int", traceIdAttr, slog.String("key", keys[i]), slog.Any(constant.LogFieldErr, err))
			return
		}

		counts[packages[i].Id] = count
	}

	vars.SetBookingCounts(counts)

	slog.DebugContext(ctx, "package booking counts refreshed successfully", traceIdAttr)
}

// InitBookingCountCache seeds missing redis counters from the paid bookings in the database.
// Existing counters are left alone so concurrent increments are not lost.
func (in PackageCron) InitBookingCountCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := in.Querier.CountPaidBookingsByPackage(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count paid bookings", slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("count paid bookings: %w", err)
	}

	if len(rows) == 0 {
		slog.InfoContext(ctx, "no paid bookings found to initialize")
		return nil
	}

	pipe := in.Cache.TxPipeline()
	for _, row := range rows {
		pipe.SetNX(ctx, fmt.Sprintf(constant.EachPackageBookingsKey, row.PackageID), row.Total, 0)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to initialize booking counts in cache", slog.Any(constant.LogFieldErr, err))
		return fmt.Errorf("execute pipeline: %w", err)
	}

	slog.InfoContext(ctx, "booking counts initialized successfully", slog.Int("packages", len(rows)))
	return nil
}
