package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"platformer/internal/config"
	"platformer/internal/engine"
	"platformer/internal/entities"
	"platformer/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "config file")
	levelPath := flag.String("level", "", "level file, overrides the config")
	debug := flag.Bool("debug", false, "start with the debug view on")
	hotReload := flag.Bool("hot-reload", false, "reload the level when its file changes")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Config: WARNING: %v, using defaults", err)
	}
	if *levelPath != "" {
		cfg.Game.Level = *levelPath
	}
	if *debug {
		cfg.Game.Debug = true
	}
	if *hotReload {
		cfg.Game.HotReload = true
	}

	reg := engine.NewRegistry()
	entities.Register(reg)
	log.Printf("Game: entity types: %s", strings.Join(reg.Names(), ", "))

	g := game.New(cfg, reg)
	if err := g.Run(); err != nil {
		log.Fatalf("Game: %v", err)
	}
}
