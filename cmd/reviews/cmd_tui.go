package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/tui"
)

type TuiCmd struct {
	env *Env
}

// NewTuiCmd creates the interactive list command.
func NewTuiCmd(env *Env) *TuiCmd {
	return &TuiCmd{env: env}
}

// Run opens the review list full screen.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.env.Config
	if err := checkFeed(ctx, cfg); err != nil {
		return err
	}
	p, err := newProvider(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := newController(cfg, p, layout.CellMetrics())
	app := tui.NewApp(ctx, ctrl, cfg.Source)

	prog := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
