package main

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/g2c/audio"
	"github.com/lixenwraith/g2c/console"
	"github.com/lixenwraith/g2c/game"
	"github.com/lixenwraith/g2c/input"
)

var (
	guessConfigPath string
	guessSeed       uint64
	guessSound      bool
)

// guessCmd runs the number guessing game
var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Play the number guessing game",
	Long: `Play the number guessing game: pick a difficulty, guess the secret number
within the attempt limit, and collect points across rounds.

Difficulties are read from a TOML file when --config is set:

  title = "My Game"

  [[difficulty]]
  name = "Tiny"
  max_number = 10
  max_attempts = 3
  multiplier = 1

Examples:
  # Play with defaults
  g2c guess

  # Reproducible secrets with sound cues
  g2c guess --seed 42 --sound`,
	Args: cobra.NoArgs,
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().StringVar(&guessConfigPath, "config", "", "path to a TOML game config")
	guessCmd.Flags().Uint64Var(&guessSeed, "seed", 0, "random seed (0 picks one from the clock)")
	guessCmd.Flags().BoolVar(&guessSound, "sound", false, "play sound cues")
}

func runGuess(cmd *cobra.Command, args []string) error {
	cfg, err := game.LoadConfig(guessConfigPath)
	if err != nil {
		return err
	}

	seed := guessSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("guess: seed=%d config=%q", seed, guessConfigPath)

	var opts []game.Option
	if guessSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, game.WithCues(sm))
		}
	}

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	g := game.New(cfg, con, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts...)

	err = g.Run()
	if errors.Is(err, input.ErrInputClosed) {
		con.ClearScreen()
		con.Println("\nGoodbye!")
		return nil
	}
	return err
}
