// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/someonegg/lanematch"
	"github.com/someonegg/lanematch/logger"
)

const loggerKey = "logger"

func main() {
	app := &cli.App{
		Name:     "lane-match",
		Metadata: map[string]interface{}{},
		Usage:    "Match carriers to shipping lanes by location",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"LANEMATCH_LOG_LEVEL"},
				Usage:   "specify the log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "console",
				EnvVars: []string{"LANEMATCH_LOG_FORMAT"},
				Usage:   "specify the log format (console, json)",
			},
		},
		Before: func(ctx *cli.Context) error {
			log, err := logger.New(ctx.String("log-level"), ctx.String("log-format"))
			if err != nil {
				return err
			}
			ctx.App.Metadata[loggerKey] = log
			return nil
		},
		After: func(ctx *cli.Context) error {
			// Sync fails on terminals; nothing to report.
			_ = loggerOf(ctx).Sync()
			return nil
		},
		Commands: []*cli.Command{
			matchCmd,
			lanesCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func loggerOf(ctx *cli.Context) *zap.Logger {
	if log, ok := ctx.App.Metadata[loggerKey].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Match carriers against every lane and write a report",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			EnvVars:  []string{"LANEMATCH_INPUT"},
			Usage:    "specify the input carriers (.csv or .xlsx)",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: true,
			EnvVars:  []string{"LANEMATCH_OUTPUT"},
			Usage:    "specify the output report (.csv or .xlsx)",
		},
		&cli.StringFlag{
			Name:    "schema",
			Value:   "named",
			EnvVars: []string{"LANEMATCH_SCHEMA"},
			Usage:   "specify the input layout (named, positional or a schema.yaml)",
		},
		&cli.StringFlag{
			Name:    "company-type",
			EnvVars: []string{"LANEMATCH_COMPANY_TYPE"},
			Usage:   "override the company type filter of the schema",
		},
		&cli.StringFlag{
			Name:    "lanes",
			EnvVars: []string{"LANEMATCH_LANES"},
			Usage:   "specify a lanes.yaml replacing the built-in lanes",
		},
		&cli.StringFlag{
			Name:    "overrides",
			EnvVars: []string{"LANEMATCH_OVERRIDES"},
			Usage:   "specify an overrides.yaml of location rewrites",
		},
		&cli.StringFlag{
			Name:    "strategy",
			Value:   lanematch.Canonical.String(),
			EnvVars: []string{"LANEMATCH_STRATEGY"},
			Usage:   "specify the matching strategy (canonical, containment)",
		},
		&cli.BoolFlag{
			Name:    "bom",
			EnvVars: []string{"LANEMATCH_BOM"},
			Usage:   "prefix the csv report with a UTF-8 byte order mark",
		},
	},
	Action: func(ctx *cli.Context) error {
		var (
			inputFile = ctx.String("input")
			outFile   = ctx.String("output")
			laneFile  = ctx.String("lanes")
			overFile  = ctx.String("overrides")
		)
		strategy, err := lanematch.ParseStrategy(ctx.String("strategy"))
		if err != nil {
			return err
		}
		if inputFile == outFile {
			return errors.New("input and output are the same file")
		}
		schema, err := loadSchema(ctx.String("schema"), ctx.String("company-type"), ctx.IsSet("company-type"))
		if err != nil {
			return err
		}
		return doMatch(ctx.Context, loggerOf(ctx), inputFile, outFile, laneFile, overFile,
			schema, strategy, ctx.Bool("bom"))
	},
}

var lanesCmd = &cli.Command{
	Name:    "lanes",
	Usage:   "Print the lane table",
	Aliases: []string{"l"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "lanes",
			EnvVars: []string{"LANEMATCH_LANES"},
			Usage:   "specify a lanes.yaml replacing the built-in lanes",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doLanes(ctx.App.Writer, ctx.String("lanes"))
	},
}
