// Package main implements a command line front end for the Lunar Magic ROM
// editor wrapper.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/lmwrapper/internal/cli"
	"github.com/retroenv/lmwrapper/internal/config"
	"github.com/retroenv/lmwrapper/internal/runner"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts.Quiet)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(opts.Quiet)

	if err := runner.Run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(1)
		}
		logger.Error("Operation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(quiet bool) {
	if quiet {
		return
	}
	fmt.Println("[---------------------------------------]")
	fmt.Println("[ lmwrapper - Lunar Magic command runner ]")
	fmt.Printf("[---------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
