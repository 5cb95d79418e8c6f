package main

import (
	"flag"
	"log"
	"os"

	"screensaver/internal/game"
)

func main() {
	// Startup failures are reported on stdout alongside normal messages.
	log.SetOutput(os.Stdout)

	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err == nil {
		err = game.Run(cfg)
	}
	if err != nil {
		log.Print(err)
		os.Exit(game.ExitCode(err))
	}
	log.Print("Exiting.")
}
