package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/naveenspark/reviews/internal/config"
	"github.com/naveenspark/reviews/internal/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// defaultLogFile keeps logs off the terminal the TUI draws on.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "reviews", "reviews.log")
}

func main() {
	ctx := context.Background()

	var logCloser func()
	flags := &Flags{}
	env := &Env{}

	app := &cli.Command{
		Name:      "reviews",
		Usage:     "Browse a paginated review feed",
		UsageText: "reviews [global options] command [command options]",
		Description: `Reviews shows an infinitely scrolling list of customer reviews.

Pages are fetched on demand as you scroll. Long reviews are truncated and
can be expanded in place.

Run 'reviews' with no arguments to open the interactive list.
Run 'reviews serve' to serve the bundled feed over HTTP.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("REVIEWS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("REVIEWS_LOG_FILE"),
				Value:       defaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("REVIEWS_CONFIG"),
				Value:       config.DefaultPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "source",
				Aliases:     []string{"s"},
				Usage:       `review feed: "fixture" or an http(s) base URL`,
				Sources:     cli.EnvVars("REVIEWS_SOURCE"),
				Destination: &flags.Source,
			},
			&cli.StringFlag{
				Name:        "token",
				Usage:       "bearer token for the review feed",
				Sources:     cli.EnvVars("REVIEWS_TOKEN"),
				Destination: &flags.Token,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := loadConfig(flags)
			if err != nil {
				return ctx, err
			}
			*env = Env{Config: cfg, Version: build()}

			log.Debug().
				Str("source", cfg.Source).
				Int("page_size", cfg.PageSize).
				Str("version", env.Version).
				Msg("configured")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := NewTuiCmd(env)

	app = NewDumpCmd(env).Register(app)
	app = NewServeCmd(env).Register(app)

	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'reviews --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}
