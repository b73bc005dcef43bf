package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tmarchand/bankbook/cmd/accounts"
	"tmarchand/bankbook/cmd/importcmd"
	"tmarchand/bankbook/cmd/preview"
	"tmarchand/bankbook/cmd/root"
	"tmarchand/bankbook/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly so every logger honors it
	logLevel := configureLogLevelDirectly()
	logging.SetAllLogLevels(logLevel)

	// 3. Initialize commands
	root.Init()
	importcmd.Init()

	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(preview.Cmd)
	root.Cmd.AddCommand(importcmd.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
