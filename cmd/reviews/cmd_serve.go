package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/naveenspark/reviews/internal/logging"
	"github.com/naveenspark/reviews/internal/server"
)

type ServeCmd struct {
	env *Env

	// flags
	addr string
}

// NewServeCmd creates the serve command.
func NewServeCmd(env *Env) *ServeCmd {
	return &ServeCmd{env: env}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the configured review feed over HTTP",
		UsageText: "reviews serve [--addr :8080]",
		Description: `Serves GET /api/reviews?offset=N&limit=M and GET /health.

With the default fixture source this gives the interactive list a local
feed to page through: run 'reviews --source http://localhost:8080'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Sources:     cli.EnvVars("REVIEWS_ADDR"),
				Value:       ":8080",
				Destination: &cmd.addr,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	p, err := newProvider(cmd.env.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cmd.addr, p, logging.Component("server"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		if err := srv.Stop(); err != nil {
			return fmt.Errorf("stop server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
