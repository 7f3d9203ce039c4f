package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagSeed       = flag.Int64("seed", 0, "Terrain generation seed (0 = random)")
	flagRoughness  = flag.Float64("roughness", 0, "Terrain roughness in (0,1]")
	flagWireframe  = flag.Bool("wireframe", false, "Start in wireframe mode")
	flagGradient   = flag.String("gradient", "", "Path to altitude gradient image")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Game.ShowFPS = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagRoughness > 0 {
		cfg.Terrain.Roughness = *flagRoughness
	}
	if *flagWireframe {
		cfg.Graphics.Wireframe = true
	}
	if *flagGradient != "" {
		cfg.Terrain.Gradient = *flagGradient
	}
}
