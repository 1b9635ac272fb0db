// Package launch turns raw SpaceX API records into display-ready launches.
//
// It owns every default the UI shows: placeholder names, the tri-state
// outcome, timestamp formatting and the fallbacks used when a rocket or
// launchpad id cannot be resolved. Loaders take a spacex.Source, log fetch
// failures to the supplied logger and degrade to empty results, so callers
// can render whatever they get.
//
// Functions here hold no state between calls; caching is the caller's job
// (see the session package).
package launch
