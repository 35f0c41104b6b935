package main

import (
	"log"

	"github.com/AndreasHiropedi/Events-System-sub000/internal/app"
	"github.com/AndreasHiropedi/Events-System-sub000/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to build events system: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("events system stopped with error: %v", err)
	}
}
