package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all screensaver configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Animation AnimationConfig `yaml:"animation"`
	Assets    AssetsConfig    `yaml:"assets"`
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Debug     DebugConfig     `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	// PollRate is how often input is polled per second. It should be
	// higher than Animation.Framerate so key presses never wait a tick.
	PollRate int `yaml:"poll_rate"`
}

type AnimationConfig struct {
	Framerate  int `yaml:"framerate"`   // simulation ticks per second
	FrameCount int `yaml:"frame_count"` // number of numbered frame images
}

type AssetsConfig struct {
	Dir string `yaml:"dir"`
	// FramePattern names frame files; %d is replaced by the 1-based frame number.
	FramePattern string `yaml:"frame_pattern"`
}

type GraphicsConfig struct {
	Background  Color `yaml:"background"`
	SpriteScale int   `yaml:"sprite_scale"`
}

type DebugConfig struct {
	ShowStats bool `yaml:"show_stats"`
}

// Default returns the built-in configuration. LoadConfig decodes on top of
// it, so a config file only needs the keys it changes.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "Screen Saver Demo",
			Resizable:    true,
			PollRate:     120,
		},
		Animation: AnimationConfig{
			Framerate:  30,
			FrameCount: 8,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			FramePattern: "Test%d.png",
		},
		Graphics: GraphicsConfig{
			Background:  RGB(64, 128, 128),
			SpriteScale: 1,
		},
	}
}

// LoadConfig loads the configuration from a YAML file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate checks values that would make the window or the loop unusable.
// A zero frame count is left to the asset loader, which reports it as its
// own failure.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size must be positive, got %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.PollRate <= 0 {
		errs = append(errs, fmt.Errorf("display.poll_rate must be positive, got %d", c.Display.PollRate))
	}
	if c.Animation.Framerate <= 0 || c.Animation.Framerate > 1000 {
		errs = append(errs, fmt.Errorf("animation.framerate must be in 1..1000, got %d", c.Animation.Framerate))
	}
	if c.Animation.FrameCount < 0 {
		errs = append(errs, fmt.Errorf("animation.frame_count must not be negative, got %d", c.Animation.FrameCount))
	}
	if strings.Count(c.Assets.FramePattern, "%d") != 1 {
		errs = append(errs, fmt.Errorf("assets.frame_pattern must contain exactly one %%d, got %q", c.Assets.FramePattern))
	}
	if c.Graphics.SpriteScale < 1 {
		errs = append(errs, fmt.Errorf("graphics.sprite_scale must be at least 1, got %d", c.Graphics.SpriteScale))
	}
	return errors.Join(errs...)
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetFramerate() int {
	return c.Animation.Framerate
}

func (c *Config) GetFrameCount() int {
	return c.Animation.FrameCount
}
