package network

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptrace"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const userAgent = "apibench"

// CreateHTTPClient creates the HTTP client shared by every request of a run.
// A zero timeout leaves requests unbounded.
func CreateHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: 100,
			MaxConnsPerHost:     100,
			IdleConnTimeout:     30 * time.Second,
		},
		Timeout: timeout,
	}
}

// fetch performs a GET and returns the body along with its timing
func fetch(ctx context.Context, client *http.Client, urlArg string) ([]byte, RequestTiming, error) {
	timing := RequestTiming{URL: urlArg}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlArg, nil)
	if err != nil {
		return nil, timing, fmt.Errorf("error creating request for %s: %w", urlArg, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	trace := createHTTPTrace(start, &timing)
	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	resp, err := client.Do(req)
	if err != nil {
		return nil, timing, fmt.Errorf("error fetching %s: %w", urlArg, err)
	}
	defer resp.Body.Close()

	bodyBuffer := new(bytes.Buffer)
	size, err := io.Copy(bodyBuffer, resp.Body)
	timing.Duration = time.Since(start)
	if err != nil {
		return nil, timing, fmt.Errorf("error reading response body from %s: %w", urlArg, err)
	}
	timing.Size = int(size)

	log.Debug().
		Str("url", urlArg).
		Int("status", resp.StatusCode).
		Int64("size", size).
		Dur("duration", timing.Duration).
		Bool("reused", timing.ConnectionReused).
		Msg("Request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, timing, &StatusError{
			URL:        urlArg,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Title:      htmlTitle(resp.Header.Get("Content-Type"), bodyBuffer.Bytes()),
		}
	}

	return bodyBuffer.Bytes(), timing, nil
}

// createHTTPTrace creates a trace that records connection reuse and time to first byte
func createHTTPTrace(start time.Time, timing *RequestTiming) *httptrace.ClientTrace {
	var mu sync.Mutex

	return &httptrace.ClientTrace{
		GotConn: func(info httptrace.GotConnInfo) {
			mu.Lock()
			timing.ConnectionReused = info.Reused
			mu.Unlock()
		},
		GotFirstResponseByte: func() {
			mu.Lock()
			timing.TTFB = time.Since(start)
			mu.Unlock()
		},
	}
}

// statusTransport turns non-2xx responses into a *StatusError.
// Used for clients that do not check the status themselves.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return nil, &StatusError{
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Title:      htmlTitle(resp.Header.Get("Content-Type"), body),
	}
}

// withStatusCheck returns a copy of client whose transport rejects non-2xx responses
func withStatusCheck(client *http.Client) *http.Client {
	checked := *client
	checked.Transport = statusTransport{base: client.Transport}
	return &checked
}
