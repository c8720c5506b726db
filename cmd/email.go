package cmd

import (
	"context"
	"github.com/nats-io/nats.go/jetstream"
	"kerala-tours/common/constant"
	"kerala-tours/inbound/event"
	emailOutbound "kerala-tours/outbound/email"
	"log"
	"log/slog"
)

func runQueueEmailCmd(ctx context.Context) {
	cfg := newCfg("env")

	stopProfiling := startProfiling(cfg, "email")
	defer stopProfiling()

	shutdownTracer := newTracer(ctx, cfg)
	defer shutdownTracer()

	natsConn := newNats(cfg)
	defer natsConn.Close()

	js := newJs(natsConn)
	st := createStreamWorkQueue(ctx, cfg, js)

	outbound := &emailOutbound.EmailOutbound{Cfg: cfg}
	outbound.Init()

	emailEvent := event.EmailEvent{
		Sender:  outbound,
		Timeout: cfg.GetDuration("queue.email.timeout"),
	}

	cons, err := st.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       "consumer:email",
		FilterSubject: constant.EmailWildcard,
		MaxDeliver:    cfg.GetInt("queue.email.max_deliver"),
		AckWait:       cfg.GetDuration("queue.email.ack_wait"),
	})
	if err != nil {
		log.Fatalln("failed to create consumer", err)
	}

	slog.InfoContext(ctx, "email queue consumer started")

	consume(ctx, cons, map[string]eventHandler{
		constant.SubjectSendEmail: emailEvent.SendEmailHandler,
	})

	slog.InfoContext(ctx, "email queue consumer stopped")
}
