package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/definitepotato/espocrmz/pkg/espocrm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	apiClient, err := New(&espocrm.Config{
		APIEndpoint: serverURL,
		APIKey:      "test-key",
	})
	require.NoError(t, err)

	return apiClient
}

func TestNew(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, espocrm.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := New(&espocrm.Config{APIKey: "test-key"})
		require.ErrorIs(t, err, espocrm.ErrAPIEndpointRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := New(&espocrm.Config{APIEndpoint: "https://crm.example.com"})
		require.ErrorIs(t, err, espocrm.ErrAPIKeyRequired)
	})
}

func TestClient_Read(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/78abc123def456", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		json.NewEncoder(w).Encode(map[string]string{"id": "78abc123def456", "name": "Alice"})
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL).Read(context.Background(), "Contact", "78abc123def456")
	require.NoError(t, err)

	contact, err := espocrm.DecodeEntity[map[string]string](body)
	require.NoError(t, err)
	assert.Equal(t, "Alice", (*contact)["name"])
}

func TestClient_List(t *testing.T) {
	t.Run("default params with one filter", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/Contact", r.URL.Path)
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t,
				"maxSize=200&offset=0&total=false&order=desc"+
					"&where[0][type]=equals&where[0][attribute]=name&where[0][value]=Alice",
				r.URL.RawQuery)

			json.NewEncoder(w).Encode(espocrm.ListResponse[map[string]string]{
				Total: 1,
				List:  []map[string]string{{"name": "Alice"}},
			})
		}))
		defer server.Close()

		body, err := newTestClient(t, server.URL).List(context.Background(), "Contact",
			espocrm.NewListParams(),
			[]espocrm.Where{{Type: espocrm.Equals, Attribute: "name", Value: "Alice"}})
		require.NoError(t, err)

		result, err := espocrm.DecodeEntity[espocrm.ListResponse[map[string]string]](body)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("nil params fall back to defaults", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "maxSize=200&offset=0&total=false&order=desc", r.URL.RawQuery)
			json.NewEncoder(w).Encode(espocrm.ListResponse[map[string]string]{})
		}))
		defer server.Close()

		_, err := newTestClient(t, server.URL).List(context.Background(), "Contact", nil, nil)
		require.NoError(t, err)
	})

	t.Run("parameters fragment precedes filters", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t,
				"maxSize=10&offset=20&total=true&order=asc"+
					"&where[0][type]=isNotNull&where[0][attribute]=emailAddress&where[0][value]="+
					"&where[1][type]=contains&where[1][attribute]=name&where[1][value]=Corp",
				r.URL.RawQuery)
			json.NewEncoder(w).Encode(espocrm.ListResponse[map[string]string]{})
		}))
		defer server.Close()

		params := espocrm.NewListParams().
			WithMaxSize(10).
			WithOffset(20).
			WithOrder(espocrm.Ascending).
			WithTotal(true)

		_, err := newTestClient(t, server.URL).List(context.Background(), "Account", params,
			[]espocrm.Where{
				{Type: espocrm.IsNotNull, Attribute: "emailAddress", Value: ""},
				{Type: espocrm.Contains, Attribute: "name", Value: "Corp"},
			})
		require.NoError(t, err)
	})
}

func TestClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var payload map[string]string

		json.NewDecoder(r.Body).Decode(&payload)
		assert.Equal(t, "Alice", payload["name"])

		json.NewEncoder(w).Encode(map[string]string{"id": "c-1", "name": "Alice"})
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL).Create(context.Background(), "Contact", []byte(`{"name":"Alice"}`))
	require.NoError(t, err)

	created, err := espocrm.DecodeEntity[map[string]string](body)
	require.NoError(t, err)
	assert.Equal(t, "c-1", (*created)["id"])
}

func TestClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/c-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var payload map[string]string

		json.NewDecoder(r.Body).Decode(&payload)
		assert.Equal(t, "Alicia", payload["name"])

		json.NewEncoder(w).Encode(map[string]string{"id": "c-1", "name": "Alicia"})
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Update(context.Background(), "Contact", "c-1", []byte(`{"name":"Alicia"}`))
	require.NoError(t, err)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/c-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		w.Write([]byte("true"))
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL).Delete(context.Background(), "Contact", "c-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), body)
}

func TestClient_DeleteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"messageTranslation":{"label":"notFound"}}`))
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL).Delete(context.Background(), "Contact", "missing")
	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, espocrm.IsNotFound(err))
}

func TestClient_ListRelated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/c-1/opportunities", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Empty(t, r.URL.RawQuery)

		json.NewEncoder(w).Encode(espocrm.ListResponse[map[string]string]{Total: 0})
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).ListRelated(context.Background(), "Contact", "c-1", "opportunities")
	require.NoError(t, err)
}

func TestClient_Link(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/c-1/opportunities", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var payload map[string]string

		json.NewDecoder(r.Body).Decode(&payload)
		assert.Equal(t, "opp-1", payload["id"])

		w.Write([]byte("true"))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).Link(context.Background(), "Contact", "c-1", "opportunities", []byte(`{"id":"opp-1"}`))
	require.NoError(t, err)
}

func TestClient_Unlink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/Contact/c-1/opportunities", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		// The payload must survive the DELETE round trip; the server
		// takes the identifiers from the body.
		var payload map[string]string

		err := json.NewDecoder(r.Body).Decode(&payload)
		assert.NoError(t, err)
		assert.Equal(t, "opp-1", payload["id"])

		w.Write([]byte("true"))
	}))
	defer server.Close()

	body, err := newTestClient(t, server.URL).Unlink(context.Background(), "Contact", "c-1", "opportunities", []byte(`{"id":"opp-1"}`))
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), body)
}
