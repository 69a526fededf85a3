package cmd

import (
	"context"
	"event-map/core/catalog"
	catalogOutbound "event-map/outbound/catalog"
	"event-map/outbound/sqlgen"
	"log"
	"log/slog"
	"time"
)

func runCatalogSeedCmd(ctx context.Context) {
	cfg := newCfg("env")

	db := newDb(cfg)
	defer db.Close()

	seeder := catalogOutbound.Seeder{Db: db, Querier: sqlgen.New(db)}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	events := catalog.Builtin()
	if err := seeder.Seed(ctx, events); err != nil {
		log.Fatalln("unable to seed catalog", err)
	}

	slog.InfoContext(ctx, "catalog seed finished", slog.Int("events", len(events)))
}
