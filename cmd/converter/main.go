package main

import (
	"context"
	"log"
	"os"

	"github.com/theyuvrajyadav/currency-converter/internal/cli"
	"github.com/theyuvrajyadav/currency-converter/internal/config"
	"github.com/theyuvrajyadav/currency-converter/internal/logger"
	"github.com/theyuvrajyadav/currency-converter/internal/service"
)

func main() {
	cfg := config.Load()

	// Keep conversion output clean unless logging was asked for explicitly.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Logging.Level = "error"
	}

	zapLogger, err := logger.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	currencyService := service.NewCurrencyService(cfg, zapLogger)
	app := cli.New(currencyService, zapLogger, os.Stdin, os.Stdout, os.Stderr)

	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
