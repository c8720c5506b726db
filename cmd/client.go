package cmd

import (
	"context"
	"kerala-tours/common/constant"
	"log/slog"
	"net/http"
	"time"
)

// runClientCmd periodically asks the http server to release bookings whose advance
// payment window has expired.
func runClientCmd(ctx context.Context) {
	cfg := newCfg("env")

	cancelTicker := time.NewTicker(cfg.GetDuration("client.cancel_interval"))
	defer cancelTicker.Stop()

	cancelUrl := cfg.GetString("client.cancel_url")

	client := &http.Client{
		Timeout: 20 * time.Second,
	}

	slog.InfoContext(ctx, "client started", slog.String("cancel_url", cancelUrl))

	for {
		select {
		case <-cancelTicker.C:
			go requestCancel(ctx, client, cancelUrl)
		case <-ctx.Done():
			slog.InfoContext(ctx, "client stopped")
			return
		}
	}
}

func requestCancel(ctx context.Context, client *http.Client, cancelUrl string) {
	reqCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, cancelUrl, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create request", slog.String("url", cancelUrl), slog.Any(constant.LogFieldErr, err))
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "cancel request failed", slog.String("url", cancelUrl), slog.Any(constant.LogFieldErr, err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.WarnContext(ctx, "cancel request rejected", slog.String("url", cancelUrl), slog.Int("status", resp.StatusCode))
	}
}
