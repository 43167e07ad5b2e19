package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riverrun/internal/config"
	"github.com/vovakirdan/riverrun/internal/core"
	"github.com/vovakirdan/riverrun/internal/games/river"
	"github.com/vovakirdan/riverrun/internal/platform/tui"
	"github.com/vovakirdan/riverrun/internal/registry"
	"github.com/vovakirdan/riverrun/internal/storage"
)

var flagDesign string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game, optionally with a custom scene design.

A scene design describes the river layout as a sequence of parts. Each
line has six numbers: five width percentages (land, river, land, river,
land) and the part height in rows.

Examples:
  riverrun play
  riverrun play --design ./scene.design
  riverrun play --seed 42
  riverrun play --config ./riverrun.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDesign, "design", "", "Path to a scene design file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	design, err := river.ResolveDesign(flagDesign, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene design: %v\n", err)
		os.Exit(1)
	}

	river.SetConfig(cfg)
	river.SetDesign(design)

	// Terminal size, with fallbacks for non-terminal stdout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate(),
		Seed:     flagSeed,
	}

	game, err := registry.Create("river")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
