package main

import (
	"log"

	"github.com/leaguehub/leaguehub/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("leaguehub failed to start: %v", err)
	}
}
