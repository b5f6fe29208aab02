// Package core contains the business logic for the Pricewatch API.
// It has no web framework dependencies; external concerns are injected
// through interfaces.
//
// Sub-packages:
//
// - domain: raw pages, normalized items, history entries and reports
// - search: page fetching, concurrent fan-out, merging and normalization
// - history: the bounded, most-recent-first search ledger
// - report: Slack message formatting and webhook delivery
// - errors: typed errors for validation, configuration, upstream and delivery failures
// - interfaces: contracts for cache, HTTP, logging and the services themselves
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	svc := search.NewSearchService(deps, search.Options{
//	    Endpoint:     config.DefaultSearchEndpoint,
//	    ClientID:     clientID,
//	    ClientSecret: clientSecret,
//	})
//
//	result, err := svc.Search(ctx, "airpods", "100000")
package core
