package session

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/five82/launchtrack/internal/launch"
	"github.com/five82/launchtrack/internal/spacex"
)

// Tracker runs the menu actions against a Source and keeps the results in a
// Store. Calls are sequential; the UI issues at most one at a time.
type Tracker struct {
	src         spacex.Source
	store       *Store
	log         logrus.FieldLogger
	recentLimit int
	searchLimit int
}

// Options configure a Tracker.
type Options struct {
	RecentLimit int // zero uses launch.DefaultRecentLimit
	SearchLimit int // zero uses launch.DefaultSearchLimit
}

// NewTracker wires a Tracker. A nil store gets a fresh one.
func NewTracker(src spacex.Source, store *Store, log logrus.FieldLogger, opts Options) *Tracker {
	if store == nil {
		store = &Store{}
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = launch.DefaultRecentLimit
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = launch.DefaultSearchLimit
	}
	return &Tracker{
		src:         src,
		store:       store,
		log:         log,
		recentLimit: opts.RecentLimit,
		searchLimit: opts.SearchLimit,
	}
}

// Store returns the backing store.
func (t *Tracker) Store() *Store { return t.store }

// Upcoming reloads the upcoming cache and the reference names.
func (t *Tracker) Upcoming(ctx context.Context) ([]launch.Launch, error) {
	launches, err := launch.LoadUpcoming(ctx, t.src, t.log)
	refErr := t.reloadReference(ctx)
	err = errors.Join(err, refErr)
	t.store.SetUpcoming(launches, err)
	return launches, err
}

// Recent reloads the past cache with the browse limit and the reference names.
func (t *Tracker) Recent(ctx context.Context) ([]launch.Launch, error) {
	launches, err := launch.LoadPast(ctx, t.src, t.recentLimit, t.log)
	refErr := t.reloadReference(ctx)
	err = errors.Join(err, refErr)
	t.store.SetPast(launches, err)
	return launches, err
}

// Search filters the cached past launches by name. When nothing is cached yet
// the past list is loaded first with the search limit. A blank query returns
// ok=false and no filtering.
func (t *Tracker) Search(ctx context.Context, query string) (matches []launch.Launch, ok bool, err error) {
	scope, needLoad := t.store.Snapshot().SearchScope()
	if needLoad {
		scope, err = launch.LoadPast(ctx, t.src, t.searchLimit, t.log)
		refErr := t.reloadReference(ctx)
		err = errors.Join(err, refErr)
		t.store.SetPast(scope, err)
	}
	matches, ok = launch.Search(scope, query)
	return matches, ok, err
}

// RefreshAll reloads the past cache with the search limit, then the upcoming
// cache, then the reference names.
func (t *Tracker) RefreshAll(ctx context.Context) error {
	past, pastErr := launch.LoadPast(ctx, t.src, t.searchLimit, t.log)
	upcoming, upErr := launch.LoadUpcoming(ctx, t.src, t.log)
	ref, refErr := launch.LoadReference(ctx, t.src, t.log)

	t.store.SetPast(past, pastErr)
	t.store.SetUpcoming(upcoming, upErr)
	err := errors.Join(pastErr, upErr, refErr)
	t.store.SetReference(ref, err)
	if err == nil {
		t.log.WithFields(logrus.Fields{
			"past":     len(past),
			"upcoming": len(upcoming),
		}).Info("data refreshed")
	}
	return err
}

func (t *Tracker) reloadReference(ctx context.Context) error {
	ref, err := launch.LoadReference(ctx, t.src, t.log)
	t.store.SetReference(ref, err)
	return err
}
