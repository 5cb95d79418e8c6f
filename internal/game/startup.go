package game

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"screensaver/internal/config"
	"screensaver/internal/graphics"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadConfig reads the configuration file. A missing file falls back to the
// built-in defaults.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: config file %s not found, using defaults", path)
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	return cfg, nil
}

// decodeFrames reads the configured frame files and classifies failures
// by startup site.
func decodeFrames(cfg *config.Config) ([]image.Image, error) {
	if _, err := graphics.EnsureDecoder(cfg.Assets.FramePattern); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageInit, err)
	}
	if cfg.GetFrameCount() <= 0 {
		return nil, ErrNoFrames
	}
	images, err := graphics.DecodeFrames(cfg.Assets.Dir, cfg.Assets.FramePattern, cfg.GetFrameCount())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFrameLoad, err)
	}
	return images, nil
}

// LoadFrames decodes the animation frames and uploads them as textures.
func LoadFrames(cfg *config.Config) (*graphics.FrameStore, error) {
	images, err := decodeFrames(cfg)
	if err != nil {
		return nil, err
	}
	store, err := graphics.NewFrameStore(images)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoFrames, err)
	}
	w, h := store.Size()
	log.Printf("Loaded %d animation frames (%dx%d)", store.Len(), w, h)
	return store, nil
}

// Run loads the assets, opens the window and drives the loop until the
// window is closed. Textures are released on every return path.
func Run(cfg *config.Config) error {
	store, err := LoadFrames(cfg)
	if err != nil {
		return err
	}
	renderer := graphics.NewRenderer(store, cfg.Graphics.Background.RGBA, cfg.Graphics.SpriteScale)
	defer renderer.Dispose()

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(cfg.Display.PollRate)

	g := NewGame(cfg, renderer)
	if err := ebiten.RunGame(g); err != nil {
		return g.classifyRunError(err)
	}

	log.Printf("Loop stats: %s", g.Stats())
	for _, alert := range g.monitor.CheckAlerts() {
		log.Printf("Warning: %s (%v, threshold %v)", alert.Message, alert.Value, alert.Threshold)
	}
	return nil
}
