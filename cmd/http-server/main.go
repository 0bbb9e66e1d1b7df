package main

import (
	"context"
	"log"
	"os"
	"time"

	"auto360_server/config"
	"auto360_server/internal/db"
	"auto360_server/internal/http"
	"auto360_server/internal/storage"
	"auto360_server/pkg/colors"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	colors.PrintBanner()

	// Initialize database connection
	if err := db.Initialize(); err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Object storage for intake file payloads
	blobs, err := storage.NewClient(config.GetStorageConfig())
	if err != nil {
		colors.PrintError("Failed to configure object storage: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := blobs.Ping(ctx); err != nil {
		colors.PrintWarning("Object storage not reachable at startup: %v", err)
	} else {
		colors.PrintSuccess("Object storage bucket reachable")
	}
	cancel()

	// Get port from environment variable or use default
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	server := http.NewServer(port, blobs)

	colors.PrintServer("AUTO360 HTTP server starting on port %s", port)
	if err := server.Start(); err != nil {
		colors.PrintError("Failed to start HTTP server: %v", err)
		os.Exit(1)
	}
}
