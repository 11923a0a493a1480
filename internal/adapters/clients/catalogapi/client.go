// Package catalogapi loads action declarations from a remote catalog API.
// Transport concerns (breaker, rate limit, retry, tracing) are handled by
// platform/httpclient; this package owns the wire format and error mapping.
package catalogapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CodeJamboree/action-builder/internal/domain/catalog"
	"github.com/CodeJamboree/action-builder/internal/platform/httpclient"
	"github.com/CodeJamboree/action-builder/internal/platform/logging"
	"github.com/CodeJamboree/action-builder/internal/ports"
)

var (
	_ ports.CatalogSource = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// ServiceName names the downstream in traces, metrics and health results.
const ServiceName = "catalog-api"

// Client implements ports.CatalogSource against GET {base_url}{path}.
type Client struct {
	http   *httpclient.Client
	path   string
	logger *slog.Logger
}

// New creates a Client fetching the catalog from path on hc's base URL.
func New(hc *httpclient.Client, path string, logger *slog.Logger) *Client {
	return &Client{http: hc, path: path, logger: logging.OrDiscard(logger)}
}

// Name implements ports.CatalogSource and ports.HealthChecker.
func (c *Client) Name() string { return ServiceName }

// Load fetches and translates the catalog. Non-200 responses become domain
// errors via TranslateHTTPError.
func (c *Client) Load(ctx context.Context) (catalog.Spec, error) {
	resp, err := c.http.Get(ctx, c.path)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil {
		// Retries exhausted on a retryable status still carry the response.
		if resp != nil {
			return catalog.Spec{}, TranslateHTTPError(resp)
		}
		c.logger.ErrorContext(ctx, "catalog request failed",
			slog.String(logging.KeyOperation, "catalogapi.Load"),
			slog.String("url", c.http.URL(c.path)),
			slog.Any(logging.KeyError, err),
		)
		return catalog.Spec{}, fmt.Errorf("GET %s: %w", c.path, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "unexpected catalog status",
			slog.String(logging.KeyOperation, "catalogapi.Load"),
			slog.Int("status", resp.StatusCode),
		)
		return catalog.Spec{}, TranslateHTTPError(resp)
	}

	var dto CatalogDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return catalog.Spec{}, fmt.Errorf("decoding catalog from %s: %w", c.path, err)
	}
	return ToSpec(dto), nil
}

// HealthCheck reports the breaker state of the underlying client.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", slog.Any(logging.KeyError, err))
	}
}
