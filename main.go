// Package main implements the main entry point for an Intel HEX to binary converter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/hexbin/internal/cli"
	"github.com/retroenv/hexbin/internal/config"
	"github.com/retroenv/hexbin/internal/fileprocessor"
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

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Conversion failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(quiet bool) {
	if quiet {
		return
	}
	fmt.Printf("hexbin - Intel HEX to binary converter\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}
