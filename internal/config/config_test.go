package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1000 {
		t.Errorf("expected width 1000, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 80 {
		t.Errorf("expected FOV 80, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.MovementSpeed != 20 {
		t.Errorf("expected movement speed 20, got %f", cfg.Camera.MovementSpeed)
	}

	if cfg.Scene.TexturesDir != "textures" {
		t.Errorf("expected textures dir 'textures', got %s", cfg.Scene.TexturesDir)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  fov: 60
  movement_speed: 35
  sensitivity: 0.2

scene:
  textures_dir: "assets/textures"

logging:
  level: "debug"
  log_file: "render.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected FOV 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.MovementSpeed != 35 {
		t.Errorf("expected movement speed 35, got %f", cfg.Camera.MovementSpeed)
	}
	if cfg.Scene.TexturesDir != "assets/textures" {
		t.Errorf("expected textures dir 'assets/textures', got %s", cfg.Scene.TexturesDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "render.log" {
		t.Errorf("expected log file 'render.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one section; everything else keeps defaults
	yamlContent := `
graphics:
  width: 640
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 800 {
		t.Errorf("expected default height 800, got %d", cfg.Graphics.Height)
	}
	if cfg.Camera.FOV != 80 {
		t.Errorf("expected default FOV 80, got %f", cfg.Camera.FOV)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Camera.MovementSpeed = 50
	cfg.Logging.Level = "warn"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	reloaded := Default()
	if err := loadFromFile(reloaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if reloaded.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", reloaded.Graphics.Width)
	}
	if reloaded.Camera.MovementSpeed != 50 {
		t.Errorf("expected movement speed 50, got %f", reloaded.Camera.MovementSpeed)
	}
	if reloaded.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", reloaded.Logging.Level)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}
