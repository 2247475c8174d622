package port

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPFetcher is the stock Fetcher: a plain GET honoring the caller's
// context.
type HTTPFetcher struct {
	Client *http.Client // nil means http.DefaultClient
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetching %s: empty response body", url)
	}
	return data, nil
}
