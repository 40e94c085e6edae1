package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/marvinbot/marvin/internal/bot"
	"github.com/marvinbot/marvin/internal/config"
	"github.com/marvinbot/marvin/internal/logging"
	"github.com/marvinbot/marvin/internal/plugins"
	"github.com/marvinbot/marvin/internal/storage"
)

// Version information - set at build time via ldflags
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("c", "./config.yaml", "Path to configuration file")
	showVersion := flag.Bool("v", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("marvin version %s (built %s)\n", version, buildDate)
		os.Exit(0)
	}

	run(*configPath)
}

func run(configPath string) {
	if !filepath.IsAbs(configPath) {
		wd, _ := os.Getwd()
		configPath = filepath.Join(wd, configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Debug, cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Close()

	if cfg.WritePid {
		if err := storage.WritePidfile(cfg.Pidfile, os.Getpid()); err != nil {
			log.Fatalf("Failed to write pidfile: %v", err)
		}
		defer storage.RemovePidfile(cfg.Pidfile)
	}

	b := bot.New(cfg, logger)

	// Plugins register their listeners now, before the loop starts.
	err = b.LoadPlugins(
		plugins.Greeter{},
		plugins.Admin{},
	)
	if err != nil {
		log.Fatalf("Failed to load plugins: %v", err)
	}

	// Signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info("received signal %v, shutting down", sig)
		b.Quit("Received shutdown signal")
	}()

	logger.Info("connecting to %s:%d...", cfg.Server, cfg.Port)
	if err := b.Run(); err != nil {
		log.Fatalf("Bot terminated: %v", err)
	}
}
