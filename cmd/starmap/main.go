package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"starfield-server/internal/shared/config"
	"starfield-server/internal/shared/logger"
	"starfield-server/internal/starsystem"
	"starfield-server/internal/viewer"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "starmap: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the viewer runs on defaults.
	_ = godotenv.Load()
	cfg := config.Load()

	closeLog, err := logger.InitFile(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	originX, err := starsystem.AxisFromInt64(cfg.Viewer.OriginX)
	if err != nil {
		return fmt.Errorf("STARMAP_ORIGIN_X: %w", err)
	}
	originY, err := starsystem.AxisFromInt64(cfg.Viewer.OriginY)
	if err != nil {
		return fmt.Errorf("STARMAP_ORIGIN_Y: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := viewer.New(
		screen,
		starsystem.NewGenerator(starsystem.DefaultRecipe),
		viewer.Options{
			Origin:     starsystem.Coordinate{X: originX, Y: originY},
			ScrollStep: cfg.Viewer.ScrollStep,
		},
		slog.With("component", "viewer"),
	)

	return v.Run(ctx)
}
