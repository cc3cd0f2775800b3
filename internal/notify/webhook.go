package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"github.com/clearops/payroll/pkg/clients"
)

const runClosedEvent = "payroll_run.closed"

type webhookPayload struct {
	Event    string    `json:"event"`
	RunID    int       `json:"run_id"`
	ClosedAt time.Time `json:"closed_at"`
	Entries  int       `json:"entries"`
	TotalNet string    `json:"total_net"`
}

// WebhookObserver posts closed runs to an external URL.
type WebhookObserver struct {
	url    string
	client clients.HTTPClientI
}

func NewWebhookObserver(url string, client clients.HTTPClientI) *WebhookObserver {
	return &WebhookObserver{
		url:    url,
		client: client,
	}
}

func (o *WebhookObserver) Name() string {
	return "webhook"
}

func (o *WebhookObserver) Notify(ctx context.Context, event domain.RunClosedEvent) error {
	body, err := json.Marshal(webhookPayload{
		Event:    runClosedEvent,
		RunID:    event.RunID,
		ClosedAt: event.ClosedAt,
		Entries:  event.Entries,
		TotalNet: event.TotalNet.StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w: %w", err, ErrPermanent)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, _, respHeaders, err := o.client.Post(ctx, o.url, headers, body)
	if err != nil {
		return err
	}

	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusTooManyRequests:
		return &RetryAfterError{Delay: retryAfter(respHeaders), Err: errors.New("webhook rate limited")}
	case statusCode >= 500:
		return fmt.Errorf("webhook responded with status %d", statusCode)
	default:
		return fmt.Errorf("webhook responded with status %d: %w", statusCode, ErrPermanent)
	}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(headers http.Header) time.Duration {
	seconds, err := strconv.Atoi(headers.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
