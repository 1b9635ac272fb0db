package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/five82/launchtrack/internal/app"
	"github.com/five82/launchtrack/internal/ui"
)

const appName = "launchtrack"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		opts        app.Options
		timeoutSecs int
		showVersion bool
	)
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/launchtrack/config.toml)")
	flags.StringVarP(&opts.APIBase, "api", "a", "", "API root URL, overrides api_base")
	flags.IntVarP(&timeoutSecs, "timeout", "t", 0, "request timeout in seconds, overrides timeout_seconds")
	flags.IntVarP(&opts.Limit, "limit", "n", 0, "recent launches to show, overrides recent_limit")
	flags.StringVarP(&opts.Print, "print", "p", "", "print the upcoming or past table and exit")
	flags.StringVar(&opts.LogFile, "log-file", "", "diagnostics log file (default <log_dir>/launchtrack.log)")
	flags.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		flags.Usage()
		return 2
	}
	if showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return 0
	}
	if timeoutSecs > 0 {
		opts.Timeout = time.Duration(timeoutSecs) * time.Second
	}
	opts.Version = version
	opts.Stdout = stdout
	opts.Stderr = stderr

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		if errors.Is(err, ui.ErrInterrupted) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(stdout, "Interrupted by user.")
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}
