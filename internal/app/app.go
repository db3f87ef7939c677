package app

import (
	"context"
	"os/signal"
	"syscall"
)

// App runs a Runner until SIGINT or SIGTERM.
type App struct {
	srv        Runner
	difficulty uint32
}

func New(srv Runner, difficulty uint32) *App {
	return &App{srv: srv, difficulty: difficulty}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext runs until ctx is done or the runner fails.
func (a *App) RunContext(ctx context.Context) error {
	return a.srv.Run(ctx, a.difficulty)
}
