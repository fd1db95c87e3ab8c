package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits, applied only when retries are explicitly enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Memory and size caps. The response body cap matches the response header
// cap so one client bounds worst-case memory at a known constant; the target
// API returns record-sized JSON payloads, not bulk exports.
const (
	// MaxResponseBodyBytes caps how much of a response body is read into
	// memory before the operation fails.
	MaxResponseBodyBytes int64 = 4 << 20

	// MaxResponseHeaderBytes caps the transport's response header buffer.
	MaxResponseHeaderBytes int64 = 4 << 20
)

// API surface.
const (
	// APIPathPrefix is the fixed path prefix of the CRM REST API.
	APIPathPrefix = "/api/v1"

	// DefaultUserAgent identifies this client to the server.
	DefaultUserAgent = "espocrmz-go"
)
