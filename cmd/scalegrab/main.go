package main

import (
	"flag"
	"os"
	"path/filepath"
	"scalegrab/internal/game"
	"scalegrab/internal/grab"
	"strings"

	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", grab.ConfigPath, "grab tuning file")
	debug := flag.Bool("debug", false, "log grab diagnostics")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(colorable.NewColorableStdout())
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := grab.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Warn("using default grab config")
	}
	log.WithFields(log.Fields{
		"policy":      cfg.Policy,
		"max_reach":   cfg.MaxReach,
		"growth_rate": cfg.GrowthRate,
	}).Info("grab config loaded")

	g := game.New(cfg, log.StandardLogger())
	g.ConfigPath = *configPath
	g.DebugMode = *debug
	g.Run()
}
