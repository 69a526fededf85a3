package cmd

import (
	"context"
	"event-map/common/constant"
	commonJetstream "event-map/common/jetstream"
	"event-map/common/otel"
	"event-map/core/catalog"
	"event-map/core/sheet"
	catalogOutbound "event-map/outbound/catalog"
	"event-map/outbound/sqlgen"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"log"
	"log/slog"
	"os"
)

func newCfg(name string) *viper.Viper {
	config := viper.New()

	config.SetConfigName(name)
	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	err := config.ReadInConfig()
	if err != nil {
		log.Fatalln(err)
	}

	err = os.Setenv("TZ", config.GetString("server.timezone"))
	if err != nil {
		log.Fatalln(err)
	}

	config.SetDefault("server.timeout", "20s")
	config.SetDefault("catalog.source", constant.CatalogSourceBuiltin)
	config.SetDefault("session.ttl", constant.SessionDefaultTTL)
	config.SetDefault("cron.catalog.refresh.interval", "5m")
	config.SetDefault("cron.catalog.refresh.timeout", "10s")
	config.SetDefault("nats.stream.max_bytes", -1)
	config.SetDefault("queue.activity.timeout", "5s")
	config.SetDefault("queue.activity.max_deliver", 5)
	config.SetDefault("queue.activity.ack_wait", "30s")
	config.SetDefault("queue.activity.nak_delay", "1s")

	return config
}

func newDb(cfg *viper.Viper) *pgxpool.Pool {
	username := cfg.GetString("db.user")
	password := cfg.GetString("db.password")
	host := cfg.GetString("db.host")
	port := cfg.GetInt("db.port")
	database := cfg.GetString("db.name")
	maxConn := cfg.GetInt("db.pool.max")
	minConn := cfg.GetInt("db.pool.min")
	timezone := cfg.GetString("server.timezone")

	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?timezone=%s",
		username, password, host, port, database, timezone)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		log.Fatalln(err)
	}

	config.MaxConns = int32(maxConn)
	config.MinConns = int32(minConn)
	config.ConnConfig.Tracer = &otel.PgxTracer{}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatalln(err)
	}

	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatalln(err)
	}

	return pool
}

func newRedis(cfg *viper.Viper) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.GetString("redis.addr"),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})

	err := rdb.Ping(context.Background()).Err()
	if err != nil {
		log.Fatalln(err)
	}

	return rdb
}

func newNats(viper *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(viper.GetString("nats.addr"), nats.Name(otel.ServiceName))
	if err != nil {
		log.Fatalln(err)
	}

	return conn
}

func newJs(conn *nats.Conn) jetstream.JetStream {
	js, err := jetstream.New(conn)
	if err != nil {
		log.Fatalln(err)
	}

	return js
}

func createStreamWorkQueue(ctx context.Context, cfg *viper.Viper, js jetstream.JetStream) jetstream.Stream {
	st, err := commonJetstream.CreateQueueStream(ctx, js, cfg.GetInt64("nats.stream.max_bytes"))
	if err != nil {
		panic(err)
	}

	return st
}

// newTracer installs the OTLP exporter when otel.endpoint is set. The
// returned func is always safe to call.
func newTracer(ctx context.Context, cfg *viper.Viper) func() {
	endpoint := cfg.GetString("otel.endpoint")
	if endpoint == "" {
		return func() {}
	}

	shutdown, err := otel.NewTracerProvider(ctx, endpoint, cfg.GetBool("otel.insecure"))
	if err != nil {
		log.Fatalln("unable to init tracer", err)
	}

	return func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("unable to shutdown tracer", slog.Any(constant.LogFieldErr, err))
		}
	}
}

func newSheetConfig(cfg *viper.Viper) sheet.Config {
	def := sheet.DefaultConfig()

	cfg.SetDefault("panel.collapsed_height", def.CollapsedHeight)
	cfg.SetDefault("panel.top_margin", def.TopMargin)
	cfg.SetDefault("panel.close_threshold", def.CloseThreshold)
	cfg.SetDefault("panel.expand_ratio", def.ExpandRatio)
	cfg.SetDefault("panel.open_ratio", def.OpenRatio)
	cfg.SetDefault("panel.open_cap", def.OpenCap)
	cfg.SetDefault("panel.narrow_width", def.NarrowWidth)

	return sheet.Config{
		CollapsedHeight: cfg.GetFloat64("panel.collapsed_height"),
		TopMargin:       cfg.GetFloat64("panel.top_margin"),
		CloseThreshold:  cfg.GetFloat64("panel.close_threshold"),
		ExpandRatio:     cfg.GetFloat64("panel.expand_ratio"),
		OpenRatio:       cfg.GetFloat64("panel.open_ratio"),
		OpenCap:         cfg.GetFloat64("panel.open_cap"),
		NarrowWidth:     cfg.GetFloat64("panel.narrow_width"),
	}
}

// newCatalogSource picks the catalog source named by catalog.source. The
// returned close func releases any connection the source holds.
func newCatalogSource(cfg *viper.Viper) (catalog.Source, func()) {
	switch source := cfg.GetString("catalog.source"); source {
	case constant.CatalogSourceFile:
		return catalogOutbound.FileSource{Path: cfg.GetString("catalog.file")}, func() {}
	case constant.CatalogSourcePostgres:
		db := newDb(cfg)
		return catalogOutbound.PostgresSource{Querier: sqlgen.New(db)}, db.Close
	case constant.CatalogSourceBuiltin, "":
		return catalog.BuiltinSource, func() {}
	default:
		log.Fatalf("unknown catalog source %q", source)
		return nil, nil
	}
}
