package event

import (
	"context"
	"encoding/json"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/otel"
	"kerala-tours/model"
	emailOutbound "kerala-tours/outbound/email"
	"log/slog"
	"time"
)

type EmailEvent struct {
	Sender  emailOutbound.Sender
	Timeout time.Duration
}

func (in EmailEvent) SendEmailHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.SendEmailEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "send email event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	if req.To == "" {
		slog.WarnContext(ctx, "send email event without recipient", slog.Any(constant.LogFieldPayload, string(msg)))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "EmailEvent.SendEmailHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	err = in.Sender.Send([]string{req.To}, req.Subject, req.Body)
	if err != nil {
		slog.ErrorContext(ctx, "send email event error", slog.Any(constant.LogFieldErr, err), slog.String("subject", req.Subject), traceIdAttr)
		common.UtilSpanError(span, err)
		return err
	}

	slog.DebugContext(ctx, "send email event success", slog.String("subject", req.Subject), traceIdAttr)

	return nil
}
