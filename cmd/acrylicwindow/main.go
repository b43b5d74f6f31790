package main

import (
	"log"
	"os"

	"AcrylicWindow/internal/config"
	"AcrylicWindow/internal/logger"
	"AcrylicWindow/internal/overlay"
)

func main() {
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	serve := os.Getenv("ACRYLIC_NO_SERVER") != "1"
	if err := overlay.Run(cfg, serve); err != nil {
		log.Fatal(err)
	}
}
