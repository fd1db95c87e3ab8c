// Package client implements the espocrm.Client interface.
package client

import (
	"context"
	"fmt"

	"github.com/definitepotato/espocrmz/internal/constants"
	"github.com/definitepotato/espocrmz/internal/http"
	"github.com/definitepotato/espocrmz/pkg/espocrm"
)

// Client implements the espocrm.Client interface. It holds the base URL and
// credential fixed at construction; every operation is a pure function of its
// arguments plus that state, so a Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     espocrm.Logger
}

// New creates a new API client from the given configuration.
func New(config *espocrm.Config) (*Client, error) {
	if config == nil {
		return nil, espocrm.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, espocrm.ErrAPIEndpointRequired
	}

	if config.APIKey == "" {
		return nil, espocrm.ErrAPIKeyRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, config.APIKey, httpOpts...)

	return &Client{
		httpClient: httpClient,
		baseURL:    config.APIEndpoint,
		logger:     config.Logger,
	}, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *espocrm.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.MaxResponseBytes > 0 {
		httpOpts = append(httpOpts, http.WithMaxResponseBytes(config.MaxResponseBytes))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Read implements espocrm.Client.Read.
func (c *Client) Read(ctx context.Context, entityType, id string) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s", constants.APIPathPrefix, entityType, id)

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("reading %s %s: %w", entityType, id, err)
	}

	return resp.Body, nil
}

// List implements espocrm.Client.List. The parameters fragment always
// precedes the filter fragment; the server parses the query positionally.
func (c *Client) List(ctx context.Context, entityType string, params *espocrm.ListParams, where []espocrm.Where) ([]byte, error) {
	if params == nil {
		params = espocrm.NewListParams()
	}

	path := fmt.Sprintf("%s/%s", constants.APIPathPrefix, entityType)
	query := params.Encode() + espocrm.EncodeWhere(where)

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", entityType, err)
	}

	return resp.Body, nil
}

// Create implements espocrm.Client.Create.
func (c *Client) Create(ctx context.Context, entityType string, payload []byte) ([]byte, error) {
	path := fmt.Sprintf("%s/%s", constants.APIPathPrefix, entityType)

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", entityType, err)
	}

	return resp.Body, nil
}

// Update implements espocrm.Client.Update.
func (c *Client) Update(ctx context.Context, entityType, id string, payload []byte) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s", constants.APIPathPrefix, entityType, id)

	resp, err := c.httpClient.Put(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", entityType, id, err)
	}

	return resp.Body, nil
}

// Delete implements espocrm.Client.Delete.
func (c *Client) Delete(ctx context.Context, entityType, id string) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s", constants.APIPathPrefix, entityType, id)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting %s %s: %w", entityType, id, err)
	}

	return resp.Body, nil
}

// ListRelated implements espocrm.Client.ListRelated.
func (c *Client) ListRelated(ctx context.Context, entityType, id, relatedType string) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s/%s", constants.APIPathPrefix, entityType, id, relatedType)

	resp, err := c.httpClient.Get(ctx, path, "")
	if err != nil {
		return nil, fmt.Errorf("listing %s related to %s %s: %w", relatedType, entityType, id, err)
	}

	return resp.Body, nil
}

// Link implements espocrm.Client.Link.
func (c *Client) Link(ctx context.Context, entityType, id, relatedType string, payload []byte) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s/%s", constants.APIPathPrefix, entityType, id, relatedType)

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("linking %s to %s %s: %w", relatedType, entityType, id, err)
	}

	return resp.Body, nil
}

// Unlink implements espocrm.Client.Unlink. The payload travels on a DELETE
// request; see the interface documentation for the compatibility caveat.
func (c *Client) Unlink(ctx context.Context, entityType, id, relatedType string, payload []byte) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/%s/%s", constants.APIPathPrefix, entityType, id, relatedType)

	resp, err := c.httpClient.DeleteWithBody(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("unlinking %s from %s %s: %w", relatedType, entityType, id, err)
	}

	return resp.Body, nil
}

// loggerAdapter adapts espocrm.Logger to http.Logger.
type loggerAdapter struct {
	logger espocrm.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
