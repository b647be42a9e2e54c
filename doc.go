// Package trackbear provides a typed client for the TrackBear
// writing-progress API.
//
// # Overview
//
// TrackBear (https://trackbear.app) tracks writing projects, daily progress
// tallies, tags, aggregate statistics, and shared leaderboards. This package
// wraps its HTTP API with one sub-client per resource collection and converts
// every JSON payload into the validated, immutable records defined in the
// models package.
//
// # Client Usage
//
// Construct a client with an API token, either explicitly or from the
// TRACKBEAR_APP_TOKEN environment variable:
//
//	client, err := trackbear.New(trackbear.WithToken("tb-..."))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	projects, err := client.Projects.List(ctx)
//	tallies, err := client.Tallies.List(ctx, trackbear.TallyFilter{
//		Measure:   enums.MeasureWord,
//		StartDate: "2025-01-01",
//	})
//
// Configuration resolves with the precedence explicit option > environment
// variable > built-in default. TRACKBEAR_USER_AGENT overrides the default
// User-Agent so applications can identify themselves, and TRACKBEAR_BASE_URL
// points the client at an alternate deployment.
//
// # Request Handling
//
// Every request carries Authorization: Bearer <token>, a User-Agent, and
// Accept: application/json, and honors the supplied context. The underlying
// *http.Client is injectable; timeouts, retries, and instrumentation belong
// to that collaborator. The library performs no retries, caching, or backoff
// of its own.
//
// # Error Handling
//
// Callers can distinguish:
//
//   - *ConfigurationError: no API token resolvable at construction
//   - *FormatError: a date filter not matching YYYY-MM-DD, raised before any
//     network call
//   - *enums.InvalidValueError: a measure, phase, or color outside its closed
//     set, raised before any network call for caller input
//   - *APIResponseError: the service answered success=false; carries the HTTP
//     status and the service's error code and message
//   - *models.ModelBuildError: a successful payload did not match the
//     expected record shape
//
// Network-level failures surface as wrapped transport errors. Nothing is
// logged-and-swallowed and nothing is retried internally.
package trackbear
