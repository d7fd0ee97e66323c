package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	Execute()
}

func newModel(ctx context.Context, cfg *Config, store *EntryStore, prompts *PromptList) (model, error) {
	raster, err := NewRasterizer(cfg.CanvasWidth, cfg.CanvasHeight)
	if err != nil {
		return model{}, err
	}
	bridge := &uiBridge{}
	return model{
		ctx:        ctx,
		mode:       ModeDrawing,
		canvasMode: ModeDrawing,
		config:     cfg,
		scene:      NewScene(),
		recorder:   &StrokeRecorder{},
		drag:       &DragController{index: -1},
		raster:     raster,
		editTextID: -1,
		store:      store,
		pipeline:   NewLockPipeline(store, bridge, bridge),
		archive:    NewArchive(store),
		bridge:     bridge,
		prompts:    prompts,
		now:        time.Now,
	}, nil
}

// runInteractive owns the terminal, so logs go to the configured file.
func runInteractive(ctx context.Context, cfg *Config, kv KV) error {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logLevel()})))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prompts := LoadPrompts(ctx, cfg.Prompts)
	m, err := newModel(ctx, cfg, NewEntryStore(kv), prompts)
	if err != nil {
		return err
	}
	if fk, ok := kv.(*FileKV); ok {
		if changes, err := fk.Watch(ctx); err != nil {
			slog.Warn("store watch disabled", "error", err)
		} else {
			m.storeChanges = changes
		}
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
