// Package main is the entry point for the roam3d viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roam3d/internal/config"
	"github.com/Faultbox/roam3d/internal/game"
	"github.com/Faultbox/roam3d/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	lc := cfg.Logging
	file := logger.FileConfig{}
	if lc.LogFile != "" {
		file = logger.DefaultFileConfig(lc.LogFile)
		file.MaxSizeMB, file.MaxBackups, file.MaxAgeDays = lc.MaxSizeMB, lc.MaxBackups, lc.MaxAgeDays
	}
	if err := logger.InitWithFileConfig(lc.Level, file, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== roam3d ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("game closed normally")
}

func run(cfg *config.Config) (err error) {
	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer func() {
		if cerr := g.Close(); cerr != nil {
			logger.Warn("shutdown incomplete", zap.Error(cerr))
		}
	}()
	return g.Run()
}
