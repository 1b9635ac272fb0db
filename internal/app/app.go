package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/launchtrack/internal/config"
	"github.com/five82/launchtrack/internal/diag"
	"github.com/five82/launchtrack/internal/launch"
	"github.com/five82/launchtrack/internal/prefs"
	"github.com/five82/launchtrack/internal/session"
	"github.com/five82/launchtrack/internal/spacex"
	"github.com/five82/launchtrack/internal/ui"
)

// Lists accepted by Options.Print.
const (
	PrintUpcoming = "upcoming"
	PrintPast     = "past"
)

// ErrUnknownList is returned for a --print value other than upcoming or past.
var ErrUnknownList = errors.New("unknown list")

// Options configure a launchtrack run. Zero values defer to the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/launchtrack/prefs.toml
	APIBase    string
	Timeout    time.Duration
	Limit      int
	LogFile    string
	Print      string // upcoming|past: print one table and exit
	Version    string // sent in the User-Agent header

	Stdout io.Writer
	Stderr io.Writer
}

// Run loads configuration, opens the diagnostics log and either prints one
// table or runs the interactive UI until the user leaves.
func Run(ctx context.Context, opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	printList := strings.ToLower(strings.TrimSpace(opts.Print))
	if printList != "" && printList != PrintUpcoming && printList != PrintPast {
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownList, opts.Print, PrintUpcoming, PrintPast)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = applyOverrides(cfg, opts)

	logPath := cfg.LogPath()
	if strings.TrimSpace(opts.LogFile) != "" {
		if logPath, err = config.ExpandPath(opts.LogFile); err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
	}
	log := diag.OpenOrDiscard(logPath, cfg.LogLevel, stderr)
	defer log.Close()

	client, err := spacex.NewClient(cfg.APIBase, cfg.Timeout, spacex.WithUserAgent(userAgent(opts.Version)))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	tracker := session.NewTracker(client, nil, log, session.Options{
		RecentLimit: cfg.RecentLimit,
		SearchLimit: cfg.SearchLimit,
	})

	log.WithFields(logrus.Fields{
		"api":     client.BaseURL(),
		"timeout": cfg.Timeout.String(),
		"mode":    modeName(printList),
	}).Info("launchtrack starting")

	if printList != "" {
		return Print(ctx, tracker, printList, stdout, stderr)
	}

	err = ui.Run(ui.Options{
		Context:   ctx,
		Tracker:   tracker,
		Log:       log,
		Source:    hostOf(client.BaseURL()),
		LogPath:   log.Path(),
		PrefsPath: opts.PrefsPath,
		Prefs:     prefs.Load(opts.PrefsPath),
	})
	if err != nil {
		log.WithError(err).Info("launchtrack stopped")
		return err
	}
	fmt.Fprintln(stdout, "Goodbye! 👋")
	return nil
}

// Print writes the upcoming or past table to w. Fetch failures are reported on
// errw after the (empty) table and do not fail the run; only cancellation does.
func Print(ctx context.Context, tracker *session.Tracker, list string, w, errw io.Writer) error {
	var (
		launches []launch.Launch
		err      error
	)
	upcoming := list == PrintUpcoming
	if upcoming {
		launches, err = tracker.Upcoming(ctx)
	} else {
		launches, err = tracker.Recent(ctx)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	rows := launch.Rows(launches, tracker.Store().Snapshot().Reference)
	if werr := ui.WriteTable(w, ui.PlainTitle(upcoming), rows); werr != nil {
		return fmt.Errorf("write table: %w", werr)
	}
	if err != nil {
		fmt.Fprintln(errw, ui.DescribeError(err))
	}
	return nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if base := strings.TrimSpace(opts.APIBase); base != "" {
		cfg.APIBase = base
	}
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.Limit > 0 {
		cfg.RecentLimit = opts.Limit
	}
	return cfg
}

func modeName(printList string) string {
	if printList == "" {
		return "interactive"
	}
	return "print " + printList
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

func userAgent(version string) string {
	if version = strings.TrimSpace(version); version == "" {
		version = "dev"
	}
	return "launchtrack/" + version
}
