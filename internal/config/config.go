package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"AcrylicWindow/internal/acrylic"

	"gopkg.in/yaml.v3"
)

func init() {
	// Metal nextDrawable fails for transparent windows on macOS. Ebiten reads
	// this before it loads, and config is initialized before the overlay.
	if runtime.GOOS == "darwin" && os.Getenv("EBITENGINE_GRAPHICS_LIBRARY") == "" {
		os.Setenv("EBITENGINE_GRAPHICS_LIBRARY", "opengl")
	}
}

const (
	defaultPort   = 8765
	defaultWidth  = 640
	defaultHeight = 400
	minSize       = 160
	defaultTitle  = "acrylicwindow"
)

// Config is the application configuration.
type Config struct {
	Server  ServerConfig       `yaml:"server"`
	Window  acrylic.Properties `yaml:"window"`
	Overlay OverlayConfig      `yaml:"overlay"`
}

// ServerConfig holds control server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// OverlayConfig holds demo window settings.
type OverlayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// Display is the index of the monitor the window is centered on.
	Display int `yaml:"display"`
}

// Dir returns the OS-specific config directory (e.g. %AppData%\acrylicwindow).
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "acrylicwindow"), nil
}

// Path returns the full path to config.yaml.
func Path() (string, error) {
	d, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}

// Load reads config from the OS config dir, or returns default if missing.
func Load() (*Config, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(p)
}

// LoadFile reads config from path. Keys absent from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

func (c *Config) normalize() {
	if c.Server.Port <= 0 {
		c.Server.Port = defaultPort
	}
	if c.Overlay.Width < minSize {
		c.Overlay.Width = minSize
	}
	if c.Overlay.Height < minSize {
		c.Overlay.Height = minSize
	}
	if c.Overlay.Title == "" {
		c.Overlay.Title = defaultTitle
	}
	if c.Overlay.Display < 0 {
		c.Overlay.Display = 0
	}
	if c.Window.DimStrength < 0 {
		c.Window.DimStrength = 0
	}
	if c.Window.DimStrength > 1 {
		c.Window.DimStrength = 1
	}
	if c.Window.TextSize <= 0 {
		c.Window.TextSize = acrylic.DefaultProperties().TextSize
	}
}

// Save writes config to the OS config dir.
func Save(c *Config) error {
	d, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	p, _ := Path()
	return SaveFile(p, c)
}

// SaveFile writes c to path.
func SaveFile(path string, c *Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: defaultPort},
		Window: acrylic.DefaultProperties(),
		Overlay: OverlayConfig{
			Width:  defaultWidth,
			Height: defaultHeight,
			Title:  defaultTitle,
		},
	}
}
