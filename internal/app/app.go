package app

import (
	"context"
	"os/signal"
	"syscall"
)

// App runs the front end until it finishes or the process is interrupted.
type App struct {
	ui Runner
}

func New(ui Runner) *App {
	return &App{ui: ui}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.ui.Run(ctx)
}
