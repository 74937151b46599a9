// Command percolation-stats estimates the site-percolation threshold of an
// n×n grid by Monte Carlo simulation.
//
// Usage:
//
//	percolation-stats [-seed S] [-workers K] [-log-level L] n trials
//
// Output:
//
//	mean                    = 0.592804
//	stddev                  = 0.009612
//	95% confidence interval = [0.590920, 0.594688]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/percolate/threshold"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, runs the estimator and prints the summary to stdout.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("percolation-stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed; trial i uses seed+i")
	workers := fs.Int("workers", 1, "number of trials to run concurrently")
	level := fs.String("log-level", "warn", "log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: percolation-stats [flags] n trials")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*level)); err != nil {
		fmt.Fprintf(stderr, "invalid -log-level %q\n", *level)
		fs.Usage()
		return exitUsage
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))

	n, trials, err := positional(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}
	if *workers < 1 {
		fmt.Fprintf(stderr, "invalid -workers %d: must be at least 1\n", *workers)
		fs.Usage()
		return exitUsage
	}

	logger.Debug("starting", "n", n, "trials", trials, "seed", *seed, "workers", *workers)
	est, err := threshold.New(n, trials,
		threshold.WithSeed(*seed),
		threshold.WithWorkers(*workers),
		threshold.WithLogger(logger),
	)
	if err != nil {
		logger.Error("estimation failed", "err", err)
		return exitError
	}

	fmt.Fprintf(stdout, "mean                    = %f\n", est.Mean())
	fmt.Fprintf(stdout, "stddev                  = %f\n", est.StdDev())
	fmt.Fprintf(stdout, "95%% confidence interval = [%f, %f]\n", est.ConfidenceLo(), est.ConfidenceHi())

	return exitOK
}

// positional parses the two required arguments, grid size and trial count.
func positional(args []string) (n, trials int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 arguments (n trials), got %d", len(args))
	}
	if n, err = strconv.Atoi(args[0]); err != nil || n <= 0 {
		return 0, 0, fmt.Errorf("invalid grid size %q: must be a positive integer", args[0])
	}
	if trials, err = strconv.Atoi(args[1]); err != nil || trials <= 0 {
		return 0, 0, fmt.Errorf("invalid trial count %q: must be a positive integer", args[1])
	}

	return n, trials, nil
}
