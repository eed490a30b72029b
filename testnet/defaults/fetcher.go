// Package defaults retrieves the baseline KEY=VALUE variables published for
// the local beacon-chain testnet scripts.
package defaults

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pushchain/push-testnet/testnet/types"
)

// DefaultURL serves the variables the lighthouse local testnet scripts ship with.
const DefaultURL = "https://raw.githubusercontent.com/sigp/lighthouse/unstable/scripts/local_testnet/vars.env"

const (
	defaultTimeout = 30 * time.Second
	maxBodySize    = 10 * 1024 * 1024
)

// Fetcher returns the raw defaults blob.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher fetches the defaults with a single GET. It never retries.
type HTTPFetcher struct {
	url        string
	httpClient *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout bounds the whole request, body included.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// New returns a fetcher for url, or DefaultURL when url is empty.
func New(url string, opts ...Option) *HTTPFetcher {
	if url == "" {
		url = DefaultURL
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	f := &HTTPFetcher{
		url: url,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// URL returns the location the fetcher reads from.
func (f *HTTPFetcher) URL() string { return f.url }

// Fetch performs the GET and returns the response body. Any transport
// failure or non-2xx status is reported as a *types.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, &types.FetchError{URL: f.url, Err: err}
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &types.FetchError{URL: f.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &types.FetchError{URL: f.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, &types.FetchError{URL: f.url, Err: err}
	}
	if len(body) > maxBodySize {
		return nil, &types.FetchError{URL: f.url, Err: errBodyTooLarge}
	}
	return body, nil
}
