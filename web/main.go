package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pkoziol/go-phong-raytracer/web/server"
)

func main() {
	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg := server.ConfigFromEnv()
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("Starting render server on %s", cfg.Address)
	if err := srv.Start(); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
