package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"AcrylicWindow/internal/acrylic"
	"AcrylicWindow/internal/style"
)

func TestLoadFileMissing(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Window != acrylic.DefaultProperties() || c.Overlay != Default().Overlay {
		t.Errorf("missing file did not yield defaults: %+v", c)
	}
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`window:
  backdrop: mica
  corner: round-small
  base_color: "#ffffff80"
  dim_strength: 3
overlay:
  width: 10
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	def := acrylic.DefaultProperties()
	if c.Window.Backdrop != style.BackdropMica || c.Window.Corner != style.CornerRoundSmall {
		t.Errorf("window = %+v", c.Window)
	}
	if c.Window.Frame != def.Frame || c.Window.TextSize != def.TextSize || !c.Window.AutoColors {
		t.Errorf("unset keys lost their defaults: %+v", c.Window)
	}
	if c.Window.BaseColor.Hex() != "#ffffff80" {
		t.Errorf("base color = %s", c.Window.BaseColor.Hex())
	}
	if c.Window.DimStrength != 1 {
		t.Errorf("dim strength = %v, want clamped to 1", c.Window.DimStrength)
	}
	if c.Overlay.Width != minSize || c.Overlay.Height != defaultHeight || c.Overlay.Title != defaultTitle {
		t.Errorf("overlay = %+v", c.Overlay)
	}
	if c.Server.Port != defaultPort {
		t.Errorf("port = %d", c.Server.Port)
	}
}

func TestLoadFileInvalid(t *testing.T) {
	for name, data := range map[string]string{
		"enum":  "window:\n  frame: wobbly\n",
		"color": "window:\n  text_color: \"not a color\"\n",
		"yaml":  "window: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile accepted an invalid config")
			}
		})
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Window.Frame = style.FrameBorderless
	c.Window.AccentTitleBar = style.AccentNever
	c.Overlay.Title = "demo"

	if err := SaveFile(path, c); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"frame: borderless", "accent_title_bar: never", "corner: default"} {
		if !bytes.Contains(first, []byte(want)) {
			t.Errorf("saved config lacks %q:\n%s", want, first)
		}
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Window.Frame != style.FrameBorderless || loaded.Overlay.Title != "demo" {
		t.Errorf("loaded = %+v", loaded)
	}
	if err := SaveFile(path, loaded); err != nil {
		t.Fatalf("second SaveFile: %v", err)
	}
	second, _ := os.ReadFile(path)
	if !bytes.Equal(first, second) {
		t.Errorf("config changed across a round trip:\n%s\n---\n%s", first, second)
	}
}
