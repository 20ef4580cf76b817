package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/reviews"
)

var progressColor = color.New(color.FgHiBlack)

type DumpCmd struct {
	env *Env

	// flags
	width  float64
	cells  bool
	expand bool
}

// NewDumpCmd creates the dump command.
func NewDumpCmd(env *Env) *DumpCmd {
	return &DumpCmd{env: env}
}

// Register adds the dump command to the application
func (cmd *DumpCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "dump",
		Usage:     "Page through the whole feed and print row layouts",
		UsageText: "reviews dump [--width 375] [--cells] [--expand]",
		Description: `Loads every page the way the interactive list does and prints one line
per row: its index, kind, computed height, and author.

Widths are in points by default; --cells lays rows out in terminal cells.`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "width",
				Usage:       "row width",
				Value:       375,
				Destination: &cmd.width,
			},
			&cli.BoolFlag{
				Name:        "cells",
				Usage:       "use terminal cell metrics",
				Destination: &cmd.cells,
			},
			&cli.BoolFlag{
				Name:        "expand",
				Usage:       "expand every truncated review before printing",
				Destination: &cmd.expand,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			p, err := newProvider(cmd.env.Config)
			if err != nil {
				return err
			}
			return cmd.run(ctx, p, os.Stdout, os.Stderr)
		},
	})

	return app
}

func (cmd *DumpCmd) run(ctx context.Context, p reviews.Provider, out, progress io.Writer) error {
	if cmd.width <= 0 {
		return fmt.Errorf("width must be positive, got %g", cmd.width)
	}

	metrics := layout.DefaultMetrics()
	if cmd.cells {
		metrics = layout.CellMetrics()
	}

	lastOffset := 0
	observer := reviews.ObserverFunc(func(s reviews.State) {
		if s.CountKnown && s.Offset != lastOffset {
			lastOffset = s.Offset
			progressColor.Fprintf(progress, "loaded %d of %d\n", s.Reviews(), s.Count)
		}
	})
	ctrl := newController(cmd.env.Config, p, metrics, reviews.WithObserver(observer))

	start := time.Now()
	for {
		ch := ctrl.RequestNextPage(ctx)
		if ch == nil {
			break
		}
		ctrl.OnPageResult(<-ch)
		if err := ctrl.LastError(); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}
	log.Info().Int("rows", ctrl.RowCount()).Int64("ms", sinceMillis(start)).Msg("feed loaded")

	if cmd.expand {
		for i := 0; i < ctrl.RowCount(); i++ {
			if row, ok := ctrl.Review(i); ok {
				row.RequestExpand()
			}
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tKIND\tHEIGHT\tMORE\tAUTHOR")
	var total float64
	for i := 0; i < ctrl.RowCount(); i++ {
		h := ctrl.RowHeight(i, cmd.width)
		total += h
		ctrl.Render(i, &dumpTarget{w: tw, index: i, height: h, width: cmd.width})
	}
	fmt.Fprintf(tw, "\t\t%g\t\t%s\n", total, "total")
	return tw.Flush()
}

// dumpTarget prints one tab-separated line per row.
type dumpTarget struct {
	w      io.Writer
	index  int
	height float64
	width  float64
}

func (d *dumpTarget) RenderReview(row reviews.ReviewRow) {
	more := "-"
	if row.Layout(d.width).ExpandVisible {
		more = "yes"
	}
	fmt.Fprintf(d.w, "%d\treview\t%g\t%s\t%s\n", d.index, d.height, more, row.Name)
}

func (d *dumpTarget) RenderCount(row reviews.CountRow) {
	fmt.Fprintf(d.w, "%d\tcount\t%g\t-\t%s\n", d.index, d.height, row.Text)
}
