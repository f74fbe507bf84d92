package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"churnboard/adapters/dataset"
	"churnboard/internal/config"
	"churnboard/ui"
)

func main() {
	// .env is optional; deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.Server.GinMode)

	source := dataset.NewSource(cfg.Data.File)
	server, err := ui.NewServer(source)
	if err != nil {
		log.Fatal("Failed to create dashboard server:", err)
	}

	// The pipeline must succeed once before serving; a broken dataset aborts
	// startup rather than serving an empty dashboard.
	if err := server.Bootstrap(); err != nil {
		log.Fatal("Dataset load failed:", err)
	}

	log.Printf("Starting churn dashboard on http://localhost:%s", cfg.Server.Port)
	log.Fatal(server.Start(cfg.Server.Port))
}
