//go:build android

package main

import (
	"log"
	"os"

	"touchdebug/internal/config"
	"touchdebug/internal/mobile"
)

func main() {
	cfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		log.Printf("touchdebug: %v (using defaults)", err)
	}
	mobile.Run(cfg)
}
