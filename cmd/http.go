package cmd

import (
	"context"
	"event-map/core/session"
	inboundCron "event-map/inbound/cron"
	inboundHttp "event-map/inbound/http"
	outboundSession "event-map/outbound/session"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log"
	"log/slog"
	"net/http"
	"os"
	"runtime/pprof"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()

		mem, err := os.Create("http-mem.prof")
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer mem.Close()

		err = pprof.WriteHeapProfile(mem)
		if err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}

	stopTracer := newTracer(ctx, cfg)
	defer stopTracer()

	validate := validator.New()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, cfg, js)

	source, closeSource := newCatalogSource(cfg)
	defer closeSource()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(cfg.GetDuration("server.timeout"))

	store := outboundSession.RedisStore{Cache: cacheClient, TTL: cfg.GetDuration("session.ttl")}
	machine := session.NewMachine(newSheetConfig(cfg))

	inboundHttp.RegisterEventHttp(mux, cacheClient, validate)
	inboundHttp.RegisterMapHttp(mux, cfg)
	inboundHttp.RegisterSessionHttp(mux, store, machine, js, validate)

	catalogCron := &inboundCron.CatalogCron{
		Cfg:    cfg,
		Source: source,
	}

	catalogCron.Refresh(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.MetricsMiddleware(inboundHttp.CorsMiddleware(mux))),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		catalogCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
