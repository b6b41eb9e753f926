package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and bounding boxes")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMedia      = flag.String("media", "", "Media directory with models, textures and sounds")
	flagStage      = flag.String("stage", "", "Stage to start in (roaming, minigame)")
	flagSeed       = flag.Int64("seed", 0, "Mini-game random seed (0 = random)")
	flagDump       = flag.String("dump-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// DumpPath returns the --dump-config target, if any.
func DumpPath() string {
	return *flagDump
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.UI.ShowBounds = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMedia != "" {
		cfg.Media.Dir = *flagMedia
	}
	if *flagStage != "" {
		cfg.UI.StartStage = *flagStage
	}
	if *flagSeed != 0 {
		cfg.MiniGame.Seed = *flagSeed
	}
}
