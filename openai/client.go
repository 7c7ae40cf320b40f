// Package openai is a small hand-built client for the OpenAI HTTP API. It
// covers the Responses, Images, Moderations, Audio and Videos endpoints,
// encoding typed request descriptors into JSON or multipart/form-data wire
// bodies and navigating the polymorphic response envelope on the way back.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultTimeout = 300 * time.Second
	userAgent      = "openaikit/0.1"
)

// Client talks to the OpenAI API. It is stateless apart from configuration
// and safe for concurrent use.
type Client struct {
	apiKey       string
	baseURL      string
	organization string
	project      string
	timeout      time.Duration
	logger       *slog.Logger
	http         *httpClient
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (no trailing slash).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithOrganization sets the OpenAI-Organization header on every request.
func WithOrganization(org string) Option {
	return func(c *Client) {
		c.organization = org
	}
}

// WithProject sets the OpenAI-Project header on every request.
func WithProject(project string) Option {
	return func(c *Client) {
		c.project = project
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger enables debug logging of each HTTP exchange.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a Client. An empty apiKey falls back to the
// OPENAI_API_KEY environment variable; OPENAI_BASE_URL overrides the default
// base URL when set.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, &ConfigurationError{SDKError: SDKError{
			Message: "OPENAI_API_KEY is required",
		}}
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		timeout: defaultTimeout,
	}

	if envURL := os.Getenv("OPENAI_BASE_URL"); envURL != "" {
		c.baseURL = strings.TrimRight(envURL, "/")
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = newHTTPClient(c.timeout)
	return c, nil
}

// addCommonHeaders attaches the transport-level headers every request
// carries: bearer auth, content type, optional org/project, user agent.
func (c *Client) addCommonHeaders(req *http.Request, contentType string) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.organization != "" {
		req.Header.Set("OpenAI-Organization", c.organization)
	}
	if c.project != "" {
		req.Header.Set("OpenAI-Project", c.project)
	}
	req.Header.Set("User-Agent", userAgent)
}

// post executes a POST against path (relative to the base URL) and returns
// the raw response body. Any status outside 2xx becomes an *APIError.
func (c *Client) post(ctx context.Context, path, contentType string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{SDKError: SDKError{Message: "failed to create request", Cause: err}}
	}
	c.addCommonHeaders(req, contentType)

	if c.logger != nil {
		c.logger.Debug("openai request", "path", path, "content_type", contentType, "bytes", len(body))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{SDKError: SDKError{Message: "request failed", Cause: err}}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Debug("openai error response", "path", path, "status", resp.StatusCode)
		}
		return nil, buildErrorFromResponse(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{SDKError: SDKError{Message: "failed to read response", Cause: err}}
	}

	if c.logger != nil {
		c.logger.Debug("openai response", "path", path, "status", resp.StatusCode, "bytes", len(raw))
	}
	return raw, nil
}

// postJSON serializes body as application/json and POSTs it.
func (c *Client) postJSON(ctx context.Context, path string, body map[string]any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &InvalidRequestError{SDKError: SDKError{Message: "request body is not serializable", Cause: err}}
	}
	return c.post(ctx, path, "application/json", encoded)
}

// postMultipart builds a multipart/form-data body with a fresh boundary and
// POSTs it.
func (c *Client) postMultipart(ctx context.Context, path string, fields []Field, files []File) ([]byte, error) {
	boundary := RandomBoundary()
	body := BuildMultipartBody(boundary, fields, files)
	return c.post(ctx, path, "multipart/form-data; boundary="+boundary, body)
}

func parseResponse(raw []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &TransportError{SDKError: SDKError{Message: "failed to parse response JSON", Cause: err}}
	}
	return resp, nil
}

// CreateResponse calls POST /responses.
func (c *Client) CreateResponse(ctx context.Context, r *ResponsesRequest) (Response, error) {
	body, err := r.body()
	if err != nil {
		return nil, err
	}
	raw, err := c.postJSON(ctx, "/responses", body)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}

// GenerateImage calls POST /images/generations.
func (c *Client) GenerateImage(ctx context.Context, r *ImageGenerateRequest) (Response, error) {
	body, err := r.body()
	if err != nil {
		return nil, err
	}
	raw, err := c.postJSON(ctx, "/images/generations", body)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}

// EditImage calls POST /images/edits with a multipart body carrying the
// input image (and mask, when set) read from disk.
func (c *Client) EditImage(ctx context.Context, r *ImageEditRequest) (Response, error) {
	fields, files, err := r.multipart()
	if err != nil {
		return nil, err
	}
	raw, err := c.postMultipart(ctx, "/images/edits", fields, files)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}

// CreateModeration calls POST /moderations.
func (c *Client) CreateModeration(ctx context.Context, r *ModerationRequest) (Response, error) {
	body, err := r.body()
	if err != nil {
		return nil, err
	}
	raw, err := c.postJSON(ctx, "/moderations", body)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}

// CreateSpeech calls POST /audio/speech and returns the synthesized audio
// bytes as-is.
func (c *Client) CreateSpeech(ctx context.Context, r *SpeechRequest) ([]byte, error) {
	body, err := r.body()
	if err != nil {
		return nil, err
	}
	return c.postJSON(ctx, "/audio/speech", body)
}

// CreateTranscription calls POST /audio/transcriptions and returns the raw
// response body as text (the shape depends on the requested response_format).
func (c *Client) CreateTranscription(ctx context.Context, r *TranscriptionRequest) (string, error) {
	fields, files, err := r.multipart()
	if err != nil {
		return "", err
	}
	raw, err := c.postMultipart(ctx, "/audio/transcriptions", fields, files)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// CreateTranscriptionJSON is CreateTranscription with the body parsed as a
// JSON document.
func (c *Client) CreateTranscriptionJSON(ctx context.Context, r *TranscriptionRequest) (Response, error) {
	text, err := c.CreateTranscription(ctx, r)
	if err != nil {
		return nil, err
	}
	return parseResponse([]byte(text))
}

// CreateVideo calls POST /videos.
func (c *Client) CreateVideo(ctx context.Context, r *VideoRequest) (Response, error) {
	body, err := r.body()
	if err != nil {
		return nil, err
	}
	raw, err := c.postJSON(ctx, "/videos", body)
	if err != nil {
		return nil, err
	}
	return parseResponse(raw)
}
