// cmd/stylo/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/stylo/internal/app"
	"github.com/bethropolis/stylo/internal/config"
	"github.com/bethropolis/stylo/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags()
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	// --- Configuration ---
	cfg, loadErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logOut, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", cfg.Logger.LogFilePath, err)
	}
	defer closeLog()

	logger.SetFilterDebug(*flags.DebugLog)
	logger.Init(cfg.Logger, logOut)

	if loadErr != nil {
		logger.Errorf("Error loading configuration: %v", loadErr)
		closeLog()
		os.Exit(1)
	}
	for _, w := range cfg.Warnings {
		logger.Warnf("Config: %s", w)
	}

	logger.Infof("Starting %s %s...", config.AppName, version)
	logger.Debugf("Initial label: %s", cfg.InitialState())

	// --- Create and Run App ---
	stylo, err := app.NewApp(cfg, nil) // App handles internal setup
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	if err := stylo.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput opens the log destination; "" or "-" means stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stderr, func() {}, nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, err
	}
	return logFile, func() { _ = logFile.Close() }, nil
}
