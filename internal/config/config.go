// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// TerrainConfig holds landscape generation settings.
type TerrainConfig struct {
	// Size is the heightmap side length in samples. Midpoint displacement
	// works on 2^n+1 grids; other sizes are generated oversize and cropped.
	Size      int     `yaml:"size"`
	Roughness float64 `yaml:"roughness"`
	ScaleXZ   float32 `yaml:"scale_xz"`
	ScaleY    float32 `yaml:"scale_y"`
	// Seed of 0 means derive one from the current time.
	Seed     int64  `yaml:"seed"`
	Gradient string `yaml:"gradient"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	ShowFPS bool `yaml:"show_fps"`
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
		},
		Terrain: TerrainConfig{
			Size:      513,
			Roughness: 0.5,
			ScaleXZ:   100,
			ScaleY:    10,
			Seed:      0,
			Gradient:  "alt.png",
		},
		Game: GameConfig{
			ShowFPS: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
