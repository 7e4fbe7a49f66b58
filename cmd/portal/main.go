package main

import (
	"log"

	"github.com/holytrinity/portal/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ portal failed to start: %v", err)
	}
}
