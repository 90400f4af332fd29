package hosting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

const maxContentSize = 1 << 20 // 1 MB

// ContentFetcher downloads raw file content from direct content URLs.
// Requests are paced by a rate limiter, retried with backoff on 429 and
// 5xx responses (honoring a Retry-After header when the server sends
// one), and capped at 1 MB per response.
type ContentFetcher struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
	token   string
}

// NewContentFetcher creates a ContentFetcher with the given per-request
// timeout. The token, if non-empty, is sent as a bearer credential so
// private repository content resolves.
func NewContentFetcher(token string, timeout time.Duration) *ContentFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = maxRetries
	client.RetryWaitMin = 1 * time.Second
	client.RetryWaitMax = fallbackBackoff
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &ContentFetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(10), 1),
		token:   token,
	}
}

// Fetch retrieves the URL content as a string. A 404 returns
// ErrNotFound so callers can treat the node as absent.
func (f *ContentFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch %q: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return string(body), nil
}
