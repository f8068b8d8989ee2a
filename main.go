package main

import (
	"log"
	"os"

	"TapAndPaint/internal/assets"
	"TapAndPaint/internal/config"
	"TapAndPaint/internal/ui"
)

const (
	AppMole  = "mole"
	AppPaint = "paint"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	args := os.Args
	if len(args) > 1 && args[1] == AppPaint {
		runPaint(cfg)
	} else {
		runMole(cfg)
	}
}

func runMole(cfg config.Config) {
	log.Println("Starting MoleMash")
	mole, err := assets.Mole()
	if err != nil {
		if cfg.StrictAssets {
			log.Fatalf("Failed to load mole bitmap: %v", err)
		}
		log.Printf("ERROR: mole bitmap unavailable, the field will be empty: %v", err)
	}
	ui.RunMole(cfg, mole)
}

func runPaint(cfg config.Config) {
	log.Println("Starting PaintPot")
	ui.RunPaint(cfg)
}
