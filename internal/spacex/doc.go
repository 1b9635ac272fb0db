// Package spacex provides an HTTP client for the public SpaceX launch API.
//
// # Overview
//
// This package is the fetch boundary of launchtrack. It issues GET requests
// against the configured API root, bounds each one with a timeout and decodes
// the JSON payload once into strongly-typed records.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client, error types and endpoint helpers
//   - types.go: Data structures mirroring the API schema
//
// # Client Usage
//
//	client, err := spacex.NewClient("", 0) // default root, 15s timeout
//	if err != nil {
//		return err
//	}
//
//	launches, err := client.UpcomingLaunches(ctx)
//	if errors.Is(err, spacex.ErrUnavailable) {
//		// treat as no data
//	}
//
// # API Endpoints
//
//   - GET /rockets: every rocket (id, name)
//   - GET /launchpads: every launchpad (id, name, locality, region)
//   - GET /launches/upcoming: launches that have not flown yet
//   - GET /launches/past: launches that have flown
//
// Each endpoint returns a full snapshot; no pagination parameters are sent.
//
// # Optional Fields
//
// The upstream API omits or nulls fields freely. Every optional field is a
// pointer, so callers can tell "absent" from a zero value. Defaults are applied
// by the launch package, not here.
//
// # Error Handling
//
// A request is attempted exactly once. Transport failures, timeouts, non-2xx
// statuses and decode failures are all returned as *FetchError, which matches
// ErrUnavailable under errors.Is. A successful request with an empty array is
// not an error.
package spacex
