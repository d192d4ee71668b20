// Package main implements the entry point for the Learnly API server,
// which handles user registration, login and profile lookup for the
// e-learning platform.
package main

import (
	"context"
	"log"
)

// main wires configuration, logging, the database, services and the HTTP
// server, then blocks until shutdown.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
