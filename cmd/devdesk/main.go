package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/calebhays/devdesk/internal/config"
	"github.com/calebhays/devdesk/internal/dispatch"
	"github.com/calebhays/devdesk/internal/fsops"
	"github.com/calebhays/devdesk/internal/mcpserver"
	"github.com/calebhays/devdesk/internal/taskstore"
	"github.com/calebhays/devdesk/internal/telemetry"
	"github.com/calebhays/devdesk/internal/worklog"
	"github.com/calebhays/devdesk/tools"
)

func main() {
	// Log to stderr only; stdout carries the MCP stream.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "devdesk: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ws, err := fsops.NewWorkspace(cfg.ProjectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	telemetry.SetRoot(ws.Root())

	wl := worklog.New(config.UnderRoot(ws.Root(), cfg.WorkLogPath))

	store, err := taskstore.Open(config.UnderRoot(ws.Root(), cfg.TaskDBPath))
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer store.Close()

	reg := dispatch.NewRegistry()
	for _, def := range tools.Registry(tools.Deps{Workspace: ws, WorkLog: wl, Tasks: store}) {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	disp := dispatch.NewDispatcher(reg)

	srv, err := mcpserver.New(reg, disp)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("devdesk serving on stdio",
		"root", ws.Root(),
		"work_log", wl.Path(),
		"tools", len(reg.List()),
	)

	if err := mcpserver.ServeStdio(ctx, srv); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
