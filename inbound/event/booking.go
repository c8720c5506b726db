package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/message"
	"kerala-tours/catalog"
	"kerala-tours/common"
	"kerala-tours/common/constant"
	"kerala-tours/common/contract"
	"kerala-tours/common/otel"
	"kerala-tours/model"
	"kerala-tours/outbound/sqlgen"
	"log/slog"
	"time"
)

type BookingEvent struct {
	Db                   contract.DbConn
	Querier              *sqlgen.Queries
	Cache                *redis.Client
	Publisher            jetstream.Publisher
	Catalog              *catalog.Catalog
	InrCurrencyFormatter *message.Printer

	Timeout time.Duration
}

func (in BookingEvent) CreateHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.CreateBookingEventMessage
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "create booking event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "BookingEvent.CreateHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	reqAttr := slog.Any(constant.LogFieldPayload, string(msg))

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      req.Email,
		Subject: "Booking Received",
		Body:    in.buildBookingConfirmationEmailBody(req),
	})
	if err != nil {
		slog.ErrorContext(ctx, "create booking event publish error", slog.Any(constant.LogFieldErr, err), reqAttr, traceIdAttr)
		return err
	}

	slog.DebugContext(ctx, "create booking event publish success", reqAttr, traceIdAttr)

	return nil
}

// CompleteHandler marks a pending booking as paid once the gateway confirms the advance.
// Unknown or already settled bookings are acknowledged without side effects.
func (in BookingEvent) CompleteHandler(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	var req model.PaymentCallbackRequest
	err := json.Unmarshal(msg, &req)
	if err != nil {
		slog.WarnContext(ctx, "complete booking event unmarshal error", slog.Any(constant.LogFieldErr, err))
		return nil
	}

	ctx, span := otel.Tracer.Start(ctx, "BookingEvent.CompleteHandler")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.InfoContext(ctx, "complete booking event receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	tx, err := in.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := in.Querier.WithTx(tx)

	booking, err := withTx.FindBookingByExternalIdAndStatusPending(ctx, req.ExternalId)
	if errors.Is(err, pgx.ErrNoRows) {
		slog.WarnContext(ctx, "pending booking not found", traceIdAttr)
		return nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to get booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	cmd, err := withTx.UpdateBookingStatusToPaid(ctx, booking.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update booking status", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	if cmd.RowsAffected() == 0 {
		slog.WarnContext(ctx, "booking status is not pending", traceIdAttr)
		return nil
	}

	err = tx.Commit(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return err
	}

	// best effort: the booking is already committed as paid
	if err := in.Cache.Incr(ctx, fmt.Sprintf(constant.EachPackageBookingsKey, booking.PackageID)).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to increment package bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectSendEmail, model.SendEmailEventMessage{
		To:      booking.Email,
		Subject: "Booking Confirmed",
		Body:    in.buildBookingPaidEmailBody(booking),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish booking paid email", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return err
	}

	slog.InfoContext(ctx, "booking status updated to paid", traceIdAttr, slog.Any(constant.LogFieldResponse, booking.ID))

	return nil
}

func (in BookingEvent) packageTitle(packageId string) string {
	if pkg, ok := in.Catalog.GetPackageById(packageId); ok {
		return pkg.Title
	}

	return packageId
}

func (in BookingEvent) formatInr(amount int64) string {
	return in.InrCurrencyFormatter.Sprintf("₹%d", amount)
}

func (in BookingEvent) buildBookingConfirmationEmailBody(req model.CreateBookingEventMessage) string {
	return fmt.Sprintf(constant.EmailBookingConfirmationTemplate,
		req.Name,
		common.BookingCode(req.ID),
		in.packageTitle(req.PackageID),
		req.TierName,
		req.GroupSize,
		req.TravelDate,
		in.formatInr(req.TotalAmount),
		in.formatInr(req.AdvanceAmount),
		req.PaymentReference,
		req.ExpiredAt,
	)
}

func (in BookingEvent) buildBookingPaidEmailBody(row sqlgen.FindBookingByExternalIdAndStatusPendingRow) string {
	return fmt.Sprintf(constant.EmailBookingPaidTemplate,
		row.Name,
		common.BookingCode(row.ID),
		in.packageTitle(row.PackageID),
		row.TierName,
		row.GroupSize,
		in.formatInr(row.AdvanceAmount),
		in.formatInr(row.TotalAmount-row.AdvanceAmount),
	)
}
