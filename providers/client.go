package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"solscreener/metrics"
)

// statusError is a non-2xx upstream response. Adapters inspect the code
// to tell "not found" from real failures.
type statusError struct {
	provider string
	code     int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.provider, e.code)
}

func statusCode(err error) int {
	if se, ok := err.(*statusError); ok {
		return se.code
	}
	return 0
}

// newHTTPClient builds the pooled client shared by all adapters. Provider
// APIs are called from request handlers, so keep-alive reuse matters more
// than connection count.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// getJSON issues a GET and decodes the body into out. Non-2xx responses
// count as provider errors and return a statusError.
func getJSON(ctx context.Context, client *http.Client, provider, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	return doJSON(client, provider, req, header, out)
}

// postJSON issues a POST with a JSON body and decodes the response.
func postJSON(ctx context.Context, client *http.Client, provider, url string, header http.Header, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, provider, req, header, out)
}

func doJSON(client *http.Client, provider string, req *http.Request, header http.Header, out any) error {
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	metrics.ProviderRequest(provider)
	resp, err := client.Do(req)
	if err != nil {
		metrics.ProviderError(provider)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		metrics.ProviderError(provider)
		return &statusError{provider: provider, code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderError(provider)
		return fmt.Errorf("%s: decode: %w", provider, err)
	}
	return nil
}
