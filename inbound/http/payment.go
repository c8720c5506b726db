package http

import (
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/nats-io/nats.go/jetstream"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/errs"
	"kerala-tours/common/otel"
	"kerala-tours/model"
	"log/slog"
	"net/http"
)

type PaymentHttp struct {
	Publisher jetstream.Publisher
	Validate  *validator.Validate
}

func RegisterPaymentHttp(
	mux *http.ServeMux,
	publisher jetstream.Publisher,
	validate *validator.Validate,
) *PaymentHttp {
	in := &PaymentHttp{
		Publisher: publisher,
		Validate:  validate,
	}

	mux.HandleFunc("POST /api/payments/callback", in.callback)

	return in
}

func (in PaymentHttp) callback(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "PaymentHttp.callback")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "payment callback receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	err := common.PublishMessage(ctx, in.Publisher, constant.SubjectCallbackPayment, model.PaymentCallbackRequest{
		ExternalId: req.ExternalId,
		Gateway:    req.Gateway,
		PaymentId:  req.PaymentId,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error publish message when callback payment", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
