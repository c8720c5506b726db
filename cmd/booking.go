package cmd

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"kerala-tours/common/constant"
	"kerala-tours/inbound/event"
	"kerala-tours/outbound/sqlgen"
	"log"
	"log/slog"
)

func runQueueBookingCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfiling := startProfiling(cfg, "booking")
	defer stopProfiling()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	bookingEvent := event.BookingEvent{
		Db:                   db,
		Querier:              sqlgen.New(db),
		Cache:                cacheClient,
		Publisher:            js,
		Catalog:              newCatalog(),
		InrCurrencyFormatter: message.NewPrinter(language.MustParse("en-IN")),
		Timeout:              cfg.GetDuration("queue.booking.timeout"),
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:booking",
		FilterSubject: constant.BookingWildcard,
		MaxDeliver:    cfg.GetInt("queue.booking.max_deliver"),
		AckWait:       cfg.GetDuration("queue.booking.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	slog.InfoContext(ctx, "booking queue consumer started")

	consume(ctx, cons, map[string]eventHandler{
		constant.SubjectCreateBooking:   bookingEvent.CreateHandler,
		constant.SubjectCallbackPayment: bookingEvent.CompleteHandler,
	})

	slog.InfoContext(ctx, "booking queue consumer stopped")
}
