package openai

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

// httpClient is a shared HTTP client wrapper with configurable timeouts.
type httpClient struct {
	client *http.Client
}

// newHTTPClient creates an HTTP client. The overall timeout covers the whole
// exchange including the body; connect and TLS get their own shorter limits.
func newHTTPClient(timeout time.Duration) *httpClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second, // connect timeout
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &httpClient{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Do executes an HTTP request.
func (hc *httpClient) Do(req *http.Request) (*http.Response, error) {
	return hc.client.Do(req)
}

// parseRetryAfter parses a Retry-After header value into seconds.
// Supports both integer-seconds and HTTP-date formats.
func parseRetryAfter(value string) *float64 {
	if value == "" {
		return nil
	}

	if seconds, err := strconv.ParseFloat(value, 64); err == nil {
		return &seconds
	}

	for _, layout := range []string{time.RFC1123, time.RFC850} {
		if t, err := time.Parse(layout, value); err == nil {
			seconds := time.Until(t).Seconds()
			if seconds < 0 {
				seconds = 0
			}
			return &seconds
		}
	}

	return nil
}

// buildErrorFromResponse creates an *APIError from a non-2xx response,
// pulling message/type/code out of the standard error envelope when the body
// carries one.
func buildErrorFromResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{SDKError: SDKError{
			Message: "failed to read error response body",
			Cause:   err,
		}}
	}

	var message, errType, errCode string
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		if errObj, ok := raw["error"].(map[string]any); ok {
			if msg, ok := errObj["message"].(string); ok {
				message = msg
			}
			if t, ok := errObj["type"].(string); ok {
				errType = t
			}
			if c, ok := errObj["code"].(string); ok {
				errCode = c
			}
		}
	}

	if message == "" {
		message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	return &APIError{
		SDKError:   SDKError{Message: message},
		StatusCode: resp.StatusCode,
		Type:       errType,
		Code:       errCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}
}
