package main

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/lumen/internal/config"
	"github.com/olivier-w/lumen/internal/pointer"
	"github.com/olivier-w/lumen/internal/scene"
	"github.com/olivier-w/lumen/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "lumen")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", seed)

	elements, groups := scene.Landing(rand.New(rand.NewPCG(seed, seed>>1)))
	s, err := scene.New(scene.Config{
		Particles: cfg.Particles,
		Follower: pointer.Config{
			Size:      pointer.DefaultConfig().Size,
			Frequency: cfg.SpringFrequency,
			Damping:   cfg.SpringDamping,
			FPS:       cfg.FPS,
		},
		Seed: seed,
	}, elements, groups)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(ui.New(s, cfg.FPS), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	s.Teardown()
}
