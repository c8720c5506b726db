package http

import (
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
	"kerala-tours/catalog"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/errs"
	"kerala-tours/common/otel"
	"kerala-tours/model"
	"kerala-tours/outbound/sqlgen"
	"kerala-tours/pricing"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type BookingHttp struct {
	Querier              *sqlgen.Queries
	Cache                *redis.Client
	Publisher            jetstream.Publisher
	Validate             *validator.Validate
	Catalog              *catalog.Catalog
	InrCurrencyFormatter *message.Printer

	TimeNow func() time.Time

	sizeBulkCancel int32
	expiredAfter   time.Duration
	lockTTL        time.Duration
}

func RegisterBookingHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	cache *redis.Client,
	publisher jetstream.Publisher,
	validate *validator.Validate,
	packageCatalog *catalog.Catalog,
	inrCurrencyFormatter *message.Printer,
) *BookingHttp {
	in := &BookingHttp{
		Querier:              querier,
		Cache:                cache,
		Publisher:            publisher,
		Validate:             validate,
		Catalog:              packageCatalog,
		InrCurrencyFormatter: inrCurrencyFormatter,
		TimeNow:              time.Now,

		sizeBulkCancel: cfg.GetInt32("booking.bulk_cancel_size"),
		expiredAfter:   cfg.GetDuration("booking.expired_after"),
		lockTTL:        cfg.GetDuration("booking.lock_ttl"),
	}

	if in.lockTTL <= 0 {
		in.lockTTL = constant.BookingLockDefaultTTL
	}

	mux.HandleFunc("POST /api/bookings", in.create)
	mux.HandleFunc("POST /api/bookings/cancel", in.cancel)

	return in
}

func (in BookingHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid request"})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	pkg, travelDate, err := in.validateCreateBookingRequest(req)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create booking receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	locked, err := in.Cache.SetNX(ctx, fmt.Sprintf(constant.BookingLockKey, req.Email, req.PackageId), true, in.lockTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set booking lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if !locked {
		slog.DebugContext(ctx, "booking already in progress", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Booking already in progress"})
		return
	}

	pending, err := in.Querier.ExistsPendingBooking(ctx, sqlgen.ExistsPendingBookingParams{
		Email:     req.Email,
		PackageID: req.PackageId,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to find pending booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if pending {
		slog.DebugContext(ctx, "booking already pending", traceIdAttr)
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusConflict, Message: "Booking already pending"})
		return
	}

	quote := pricing.Calculate(pkg, req.TierIndex, req.GroupSize)
	externalId := ulid.Make().String()
	paymentReference := generatePaymentReference(req.Gateway)
	expiredAt := in.TimeNow().Add(in.expiredAfter)

	returnId, err := in.Querier.InsertBooking(ctx, sqlgen.InsertBookingParams{
		ExternalID:       externalId,
		PackageID:        pkg.Id,
		TierName:         quote.TierName,
		GroupSize:        int32(quote.GroupSize),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		TravelDate:       pgtype.Date{Time: travelDate, Valid: true},
		Gateway:          req.Gateway,
		PaymentReference: paymentReference,
		TotalAmount:      int64(quote.TotalAmount),
		AdvanceAmount:    int64(quote.AdvanceAmount),
		ExpiredAt:        pgtype.Timestamp{Time: expiredAt, Valid: true},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectCreateBooking, model.CreateBookingEventMessage{
		ID:               returnId,
		PackageID:        pkg.Id,
		ExternalID:       externalId,
		TierName:         quote.TierName,
		GroupSize:        int32(quote.GroupSize),
		Name:             req.Name,
		Email:            req.Email,
		TravelDate:       req.TravelDate,
		TotalAmount:      int64(quote.TotalAmount),
		AdvanceAmount:    int64(quote.AdvanceAmount),
		Gateway:          req.Gateway,
		PaymentReference: paymentReference,
		ExpiredAt:        expiredAt.Format(time.RFC3339),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish create booking message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	slog.InfoContext(ctx, "insert booking success", traceIdAttr, slog.Any(constant.LogFieldResponse, returnId))

	writeJSONResponse(w, http.StatusOK, model.CreateBookingResponse{
		Id:               returnId,
		ExternalId:       externalId,
		PaymentReference: paymentReference,
		Gateway:          req.Gateway,
		Quote:            quote,
	})
}

func (in BookingHttp) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.cancel")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "cancel booking receive request", traceIdAttr)

	cancelled, err := in.Querier.BulkCancelBookings(ctx, sqlgen.BulkCancelBookingsParams{
		Limit:     in.sizeBulkCancel,
		UpdatedAt: pgtype.Timestamp{Time: in.TimeNow(), Valid: true},
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to cancel expired bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	if len(cancelled) == 0 {
		slog.DebugContext(ctx, "no cancelable bookings", traceIdAttr)
		writeJSONResponse(w, http.StatusOK, nil)
		return
	}

	for _, booking := range cancelled {
		err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
			To:      booking.Email,
			Subject: "Booking Cancellation",
			Body:    in.buildBookingCancellationEmailBody(booking),
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to publish cancel booking message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			writeErrorResponse(w, err)
			return
		}
	}

	slog.InfoContext(ctx, "cancel booking success", slog.Any(constant.LogFieldResponse, len(cancelled)), traceIdAttr)

	writeJSONResponse(w, http.StatusOK, nil)
}

func (in BookingHttp) validateCreateBookingRequest(req model.CreateBookingRequest) (model.TourPackage, time.Time, error) {
	if err := in.Validate.Struct(req); err != nil {
		return model.TourPackage{}, time.Time{}, err
	}

	pkg, ok := in.Catalog.GetPackageById(req.PackageId)
	if !ok {
		return model.TourPackage{}, time.Time{}, errs.NewValidationError("PackageId", "not found")
	}

	travelDate, err := time.Parse(time.DateOnly, req.TravelDate)
	if err != nil {
		return model.TourPackage{}, time.Time{}, errs.NewValidationError("TravelDate", "datetime")
	}

	now := in.TimeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if travelDate.Before(today) {
		return model.TourPackage{}, time.Time{}, errs.NewValidationError("TravelDate", "past")
	}

	return pkg, travelDate, nil
}

func (in BookingHttp) buildBookingCancellationEmailBody(row sqlgen.BulkCancelBookingsRow) string {
	packageTitle := row.PackageID
	if pkg, ok := in.Catalog.GetPackageById(row.PackageID); ok {
		packageTitle = pkg.Title
	}

	advanceFormatted := in.InrCurrencyFormatter.Sprintf("₹%d", row.AdvanceAmount)

	return fmt.Sprintf(constant.EmailBookingCancellationTemplate, row.Name, common.BookingCode(row.ID), packageTitle, advanceFormatted)
}
