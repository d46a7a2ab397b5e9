// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds initial camera settings.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"`            // Vertical field of view in degrees
	MovementSpeed float32 `yaml:"movement_speed"` // World units per second
	Sensitivity   float32 `yaml:"sensitivity"`    // Mouse look sensitivity
}

// SceneConfig holds scene asset settings.
type SceneConfig struct {
	TexturesDir string `yaml:"textures_dir"` // Directory containing scene textures
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1000,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:           80,
			MovementSpeed: 20,
			Sensitivity:   0.1,
		},
		Scene: SceneConfig{
			TexturesDir: "textures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
