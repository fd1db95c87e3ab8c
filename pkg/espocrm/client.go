package espocrm

import (
	"context"
	"time"
)

// Client is the entity CRUD and relationship-linking surface of the EspoCRM
// REST API. Operations return the raw response body; callers apply
// DecodeEntity to map it into their own entity shapes. Every operation is one
// HTTP round trip against state fixed at construction, so a Client is safe
// for concurrent use.
type Client interface {
	// Read fetches a single entity: GET /api/v1/{entityType}/{id}.
	Read(ctx context.Context, entityType, id string) ([]byte, error)

	// List fetches entities matching the given parameters and filter
	// clauses: GET /api/v1/{entityType}. A nil params uses the defaults
	// (see NewListParams). The parameters fragment always precedes the
	// filter fragment in the query string.
	List(ctx context.Context, entityType string, params *ListParams, where []Where) ([]byte, error)

	// Create creates an entity: POST /api/v1/{entityType}.
	Create(ctx context.Context, entityType string, payload []byte) ([]byte, error)

	// Update modifies an entity: PUT /api/v1/{entityType}/{id}.
	Update(ctx context.Context, entityType, id string, payload []byte) ([]byte, error)

	// Delete removes an entity: DELETE /api/v1/{entityType}/{id}.
	Delete(ctx context.Context, entityType, id string) ([]byte, error)

	// ListRelated fetches entities related to an entity through a link:
	// GET /api/v1/{entityType}/{id}/{relatedType}.
	ListRelated(ctx context.Context, entityType, id, relatedType string) ([]byte, error)

	// Link relates entities to an entity:
	// POST /api/v1/{entityType}/{id}/{relatedType}.
	Link(ctx context.Context, entityType, id, relatedType string, payload []byte) ([]byte, error)

	// Unlink removes a relation: DELETE /api/v1/{entityType}/{id}/{relatedType}.
	//
	// The server identifies which records to unrelate from a JSON body on
	// the DELETE request. Bodies on DELETE are valid HTTP but some proxies
	// and intermediaries strip or reject them; the payload is transmitted
	// regardless because that is what the server expects.
	Unlink(ctx context.Context, entityType, id, relatedType string, payload []byte) ([]byte, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an espocrm.Client.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods; HTTPTimeout bounds the whole exchange at the transport
// level. The client performs no retries unless RetryMax is set.
type Config struct {
	// APIEndpoint: base URL for the CRM instance (e.g.,
	// "https://crm.example.com"). espoclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present.
	APIEndpoint string

	// APIKey: credential sent on every request as the X-Api-Key header.
	APIKey string

	// Optional configurations
	// HTTPTimeout: transport-level timeout for a full request/response
	// cycle. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). Zero disables retries, which is the
	// default.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// MaxResponseBytes: per-client cap on response body size. Zero uses
	// the default (4 MiB).
	MaxResponseBytes int64
	// Interceptors: optional request/response interceptor chain applied
	// around every exchange.
	Interceptors *InterceptorChain
}
