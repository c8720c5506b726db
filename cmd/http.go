package cmd

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	inboundCron "kerala-tours/inbound/cron"
	inboundHttp "kerala-tours/inbound/http"
	"kerala-tours/outbound/sqlgen"
	"log"
	"log/slog"
	"net/http"
	"time"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfiling := startProfiling(cfg, "http")
	defer stopProfiling()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	validate := validator.New()
	packageCatalog := newCatalog()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	createStreamWorkQueue(ctx, cfg, js)

	querier := sqlgen.New(db)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		slog.DebugContext(r.Context(), "health check")
		w.WriteHeader(http.StatusOK)
	})

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)
	rateLimitMiddleware := inboundHttp.RateLimitMiddleware(newLimiter(cfg))

	inboundHttp.RegisterCategoryHttp(mux, packageCatalog)
	inboundHttp.RegisterPackageHttp(mux, packageCatalog, validate)
	inboundHttp.RegisterBookingHttp(mux, cfg, querier, cacheClient, js, validate, packageCatalog, message.NewPrinter(language.MustParse("en-IN")))
	inboundHttp.RegisterPaymentHttp(mux, js, validate)

	packageCron := &inboundCron.PackageCron{
		Cfg:     cfg,
		Cache:   cacheClient,
		Querier: querier,
		Catalog: packageCatalog,
	}

	err := packageCron.InitBookingCountCache(ctx)
	if err != nil {
		log.Fatalln("unable to init booking count cache", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(rateLimitMiddleware(mux))),
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

	slog.Info("http server started", slog.Int("port", cfg.GetInt("server.port")))

	go func() {
		packageCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
