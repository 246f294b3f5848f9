package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pondeditor/internal/editor"
	"pondeditor/internal/logging"
	"pondeditor/internal/trace"
	"pondeditor/internal/ui"
)

const shutdownTimeout = 5 * time.Second

func runEditor(ctx context.Context, f *rootFlags) error {
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}

	log, closer, err := logging.New(logging.Options{Level: cfg.Logging.Level, File: cfg.Logging.File})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	tp, err := trace.NewProvider(ctx, trace.Options{
		Endpoint:    cfg.Telemetry.OTLPEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Warn("trace shutdown", "error", err)
		}
	}()

	prog, err := openProgram(cfg, cfg.Editor.Program)
	if err != nil {
		return err
	}
	log.Info("editor start", "program", cfg.Editor.Program, "tracing", tp.Enabled())

	model := ui.NewAppModel(ui.Options{
		Program:       prog,
		Logger:        log,
		TabSize:       cfg.Editor.TabSize,
		EditorOptions: []editor.Option{editor.WithTracer(tp.Tracer())},
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
