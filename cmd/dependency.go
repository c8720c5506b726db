package cmd

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
	"kerala-tours/catalog"
	"kerala-tours/common/constant"
	commonJetstream "kerala-tours/common/jetstream"
	"kerala-tours/common/otel"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"
)

type eventHandler func(ctx context.Context, msg []byte) error

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
	config.ConnConfig.Tracer = &otel.PgxCustomTracer{}

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

func newNats(cfg *viper.Viper) *nats.Conn {
	conn, err := nats.Connect(cfg.GetString("nats.addr"))
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
		log.Fatalln("failed to create stream", err)
	}

	return st
}

func newCatalog() *catalog.Catalog {
	return catalog.New(constant.PackagesData)
}

// newLimiter returns nil when http.rate_limit.rps is not positive, which disables limiting.
func newLimiter(cfg *viper.Viper) *rate.Limiter {
	rps := cfg.GetFloat64("http.rate_limit.rps")
	if rps <= 0 {
		return nil
	}

	return rate.NewLimiter(rate.Limit(rps), max(cfg.GetInt("http.rate_limit.burst"), 1))
}

// newTracer installs the OTLP provider when otel.enabled is set. The returned func flushes
// pending spans and is safe to call either way.
func newTracer(ctx context.Context, cfg *viper.Viper) func() {
	if !cfg.GetBool("otel.enabled") {
		return func() {}
	}

	tp, err := otel.NewTracerProvider(ctx, cfg.GetString("otel.endpoint"), cfg.GetString("otel.service_name"))
	if err != nil {
		log.Fatalln("failed to create tracer provider", err)
	}

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown tracer provider", slog.Any(constant.LogFieldErr, err))
		}
	}
}

// startProfiling writes <name>-cpu.prof and <name>-mem.prof in the dev environment.
func startProfiling(cfg *viper.Viper, name string) func() {
	if cfg.GetString("env") != "dev" {
		return func() {}
	}

	cpu, err := os.Create(name + "-cpu.prof")
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	err = pprof.StartCPUProfile(cpu)
	if err != nil {
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()
		cpu.Close()

		mem, err := os.Create(name + "-mem.prof")
		if err != nil {
			slog.Error("could not create memory profile", slog.Any(constant.LogFieldErr, err))
			return
		}
		defer mem.Close()

		if err := pprof.WriteHeapProfile(mem); err != nil {
			slog.Error("could not write memory profile", slog.Any(constant.LogFieldErr, err))
		}
	}
}

// consume dispatches messages by subject until ctx is done. A handler error naks the
// message so it is redelivered after a delay; unknown subjects are acked.
func consume(ctx context.Context, cons jetstream.Consumer, handlers map[string]eventHandler) {
	iter, err := cons.Messages()
	if err != nil {
		log.Fatalln("failed to consume messages", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				msg, err := iter.Next()
				if err != nil && err != jetstream.ErrMsgIteratorClosed {
					slog.ErrorContext(ctx, "Error fetching message", slog.Any(constant.LogFieldErr, err))
					continue
				}

				if msg == nil {
					continue
				}

				var eventErr error
				if handler, ok := handlers[msg.Subject()]; ok {
					eventErr = handler(ctx, msg.Data())
				} else {
					slog.WarnContext(ctx, "no handler for subject", slog.String("subject", msg.Subject()))
				}

				if eventErr != nil {
					if err := msg.NakWithDelay(1 * time.Second); err != nil {
						slog.ErrorContext(ctx, "Error nak message", slog.Any(constant.LogFieldErr, err), slog.String("subject", msg.Subject()))
					}
					continue
				}

				if err := msg.Ack(); err != nil {
					slog.ErrorContext(ctx, "Error acknowledging message",
						slog.Any(constant.LogFieldErr, err),
						slog.Any(constant.LogFieldPayload, string(msg.Data())),
						slog.String("subject", msg.Subject()),
					)
					continue
				}
			}
		}
	}()

	<-ctx.Done()

	iter.Stop()
}
