package main

import (
	"log"

	"github.com/glassbrowser/glassd/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ glassd failed to start: %v", err)
	}
}
