// Package espoclient provides the main entry point for creating EspoCRM API
// clients. Construct a client with New (full configuration) or NewWithAPIKey
// (endpoint and credential only), then use the espocrm.Client interface it
// returns.
package espoclient
