package main

import (
	"log"

	"github.com/theyuvrajyadav/currency-converter/internal/app"
	"github.com/theyuvrajyadav/currency-converter/internal/config"
)

func main() {
	cfg := config.Load()

	app := app.New(cfg)

	log.Println("Starting Currency Converter API on http://" + cfg.Server.Addr())
	if err := app.Run(); err != nil {
		log.Fatalf("Failed: %v", err)
	}
	log.Println("Stopped")
}
