package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yield-spend-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseBytes caps upstream response bodies.
const maxResponseBytes = 4 << 20

// HTTPInvoker implements ports.ServiceInvoker by POSTing the caller's input
// to the service's endpoint and relaying the JSON response.
type HTTPInvoker struct {
	client  HTTPClient
	timeout time.Duration
	log     zerolog.Logger
}

// NewHTTPInvoker creates an invoker with a bounded per-call timeout.
func NewHTTPInvoker(client HTTPClient, timeout time.Duration, log zerolog.Logger) *HTTPInvoker {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPInvoker{client: client, timeout: timeout, log: log}
}

// Invoke calls the upstream service. Any non-2xx status is a failure; the
// caller decides whether to refund.
func (i *HTTPInvoker) Invoke(ctx context.Context, svc *domain.ServiceDescriptor, input json.RawMessage) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	body := input
	if body == nil {
		body = json.RawMessage(`{}`)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := i.client.Do(req)
	if err != nil {
		i.log.Warn().Err(err).Str("service_id", svc.ID).Msg("upstream invocation failed")
		return nil, fmt.Errorf("invoke service %s: %w", svc.ID, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	i.log.Debug().
		Str("service_id", svc.ID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("upstream invocation completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("service %s returned status %d", svc.ID, resp.StatusCode)
	}

	if len(respBody) == 0 {
		return json.RawMessage(`{}`), nil
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("service %s returned invalid JSON", svc.ID)
	}
	return respBody, nil
}
