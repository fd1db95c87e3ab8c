package espoclient

import (
	"fmt"
	"strings"

	"github.com/definitepotato/espocrmz/internal/client"
	"github.com/definitepotato/espocrmz/pkg/espocrm"
)

// New creates a new EspoCRM API client. The API endpoint is normalized by
// trimming a trailing slash and adding "https://" if no scheme is present.
func New(config *espocrm.Config) (espocrm.Client, error) {
	if config == nil {
		return nil, espocrm.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, espocrm.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a new client with just an endpoint and an API key.
func NewWithAPIKey(endpoint, apiKey string) (espocrm.Client, error) {
	return New(&espocrm.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}
