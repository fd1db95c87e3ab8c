// Package http provides the HTTP executor used by the EspoCRM API client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/definitepotato/espocrmz/internal/constants"
	"github.com/definitepotato/espocrmz/pkg/espocrm"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method string
	Path   string
	// RawQuery is appended to the URL verbatim, including the leading "?".
	// It is never re-encoded: the server parses the unescaped where[i][...]
	// bracket syntax, so the query fragment must pass through untouched.
	RawQuery string
	Body     []byte
	Headers  map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds a full request/response cycle at the transport level.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables retries for transient failures (>=500, 429, and
// connection errors). The client performs no retries unless this option is
// applied.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithMaxResponseBytes overrides the default cap on response body size.
func WithMaxResponseBytes(maxBytes int64) Option {
	return func(c *Client) {
		c.maxResponseBytes = maxBytes
	}
}

// WithInterceptors applies an interceptor chain around every exchange.
func WithInterceptors(chain *espocrm.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// Client executes requests against the API. All fields are fixed at
// construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL          string
	apiKey           string
	retryClient      *retryablehttp.Client
	logger           Logger
	debug            bool
	userAgent        string
	maxResponseBytes int64
	interceptors     *espocrm.InterceptorChain
}

// NewClient creates a new HTTP client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.MaxResponseHeaderBytes = constants.MaxResponseHeaderBytes

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   constants.DefaultHTTPTimeout,
	}
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Hand back the last response instead of swallowing it when retries
	// are exhausted, so the caller can inspect the status.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:          baseURL,
		apiKey:           apiKey,
		retryClient:      retryClient,
		userAgent:        constants.DefaultUserAgent,
		maxResponseBytes: constants.MaxResponseBodyBytes,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and returns the response. Exactly 200 OK is treated
// as success; any other status returns the response together with an
// *espocrm.UnexpectedStatusError. POST and PUT require a body and fail before
// any network I/O without one. DELETE may carry a body (the unlink case) and
// transmits it when present.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if (req.Method == http.MethodPost || req.Method == http.MethodPut) && req.Body == nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, espocrm.ErrBodyRequired)
	}

	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("X-Api-Key", c.apiKey)

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	body := req.Body

	var intercepted *espocrm.Request
	if c.interceptors != nil {
		intercepted = &espocrm.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: headers,
			Body:    body,
		}

		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}

		headers = intercepted.Headers
		body = intercepted.Body
	}

	endpoint := c.baseURL + req.Path + req.RawQuery

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = headers

	if body != nil {
		httpReq.ContentLength = int64(len(body))
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
		})
	}

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := c.readBody(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         endpoint,
			"status_code": resp.StatusCode,
		})
	}

	var statusErr error
	if httpResp.StatusCode != http.StatusOK {
		statusErr = &espocrm.UnexpectedStatusError{
			StatusCode: httpResp.StatusCode,
			Reason:     httpResp.Header.Get("X-Status-Reason"),
			Body:       respBody,
		}
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &espocrm.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      statusErr,
		})
		if err != nil {
			return resp, err
		}
	}

	if statusErr != nil {
		return resp, statusErr
	}

	return resp, nil
}

// readBody reads the whole response body, bounded by the configured cap.
// Oversized responses fail; partial data is discarded, not returned.
func (c *Client) readBody(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, c.maxResponseBytes+1))
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > c.maxResponseBytes {
		return nil, fmt.Errorf("body larger than %d bytes: %w", c.maxResponseBytes, espocrm.ErrResponseTooLarge)
	}

	return data, nil
}

// Get performs a GET request. rawQuery, when non-empty, must include the
// leading "?" and is appended to the URL verbatim.
func (c *Client) Get(ctx context.Context, path, rawQuery string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   http.MethodGet,
		Path:     path,
		RawQuery: rawQuery,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// DeleteWithBody performs a DELETE request carrying a JSON body. The unlink
// endpoint takes its record identifiers this way; intermediaries that strip
// DELETE bodies will break it, but the server's contract requires the body.
func (c *Client) DeleteWithBody(ctx context.Context, path string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
		Body:   body,
	})
}
