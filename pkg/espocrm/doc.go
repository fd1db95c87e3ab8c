// Package espocrm provides types, interfaces, and helpers for working with
// the EspoCRM REST API.
//
// # Overview
//
// The espocrm package defines the query-building blocks (FilterOption, Where,
// ListParams), the Client interface for entity CRUD and relationship linking,
// and generic codec helpers for moving between raw response bytes and
// caller-defined entity shapes. A concrete implementation of the Client is
// provided by the espoclient package, which wires configuration, transport,
// and authentication. Most consumers should import espoclient to construct a
// client and then interact with the Client interface exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/definitepotato/espocrmz/pkg/espoclient"
//	  "github.com/definitepotato/espocrmz/pkg/espocrm"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := espoclient.NewWithAPIKey("https://crm.example.com", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  body, err := cli.List(ctx, "Contact",
//	    espocrm.NewListParams().WithMaxSize(50),
//	    []espocrm.Where{{Type: espocrm.Equals, Attribute: "name", Value: "Alice"}})
//	  if err != nil { log.Fatal(err) }
//
//	  contacts, err := espocrm.DecodeEntity[espocrm.ListResponse[map[string]any]](body)
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// # Queries
//
// Use ListParams to express pagination and ordering, and Where clauses to
// filter list results. Filter attribute and value text is inserted into the
// query string verbatim: the server expects the unescaped where[i][...]
// bracket syntax, so no percent-encoding is applied. Callers whose values
// contain reserved URL characters must pre-encode them, for example with
// QueryEscape.
//
// # Errors
//
// Any response status other than 200 OK fails the operation with an
// UnexpectedStatusError carrying the status code, the server's
// X-Status-Reason header, and the raw body. Helpers such as IsNotFound,
// IsUnauthorized, and IsForbidden make it easy to branch on common cases.
//
// # Interceptors
//
// The package includes generic request/response interceptors (for logging,
// extra headers, rotating credentials, client-side rate limiting) that the
// espoclient package can wire into the transport via Config.Interceptors.
package espocrm
