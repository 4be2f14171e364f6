// Package game implements a menu-driven number guessing game on top of the
// console, input and state packages.
package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/lixenwraith/g2c/console"
	"github.com/lixenwraith/g2c/state"
)

// State keys
const (
	KeyScore          = "score"
	KeyGamesPlayed    = "games_played"
	KeyTotalAttempts  = "total_attempts"
	KeyLastDifficulty = "last_difficulty"
)

// roundCheckpoint marks the store before a round so an abandoned round leaves no trace
const roundCheckpoint = "round"

const aboutText = `G2C (Game to Console) is a lightweight toolkit for console-based games
and applications. It provides:

  - Console management (clearing, sizing, formatting)
  - Game state management with checkpoints
  - User input handling with validation
  - Text formatting and display helpers

This number guessing game exercises each of them.`

// Cues receives game events for audible feedback
type Cues interface {
	PlayCorrect()
	PlayWrong()
	PlayGameOver()
}

type silentCues struct{}

func (silentCues) PlayCorrect()  {}
func (silentCues) PlayWrong()    {}
func (silentCues) PlayGameOver() {}

// Option configures a Game
type Option func(*Game)

// WithCues sets the event sound player
func WithCues(c Cues) Option {
	return func(g *Game) {
		if c != nil {
			g.cues = c
		}
	}
}

// Game is one player session. Not safe for concurrent use.
type Game struct {
	cfg   Config
	con   *console.Console
	rng   *rand.Rand
	store *state.Store
	cues  Cues
}

// New creates a session with zeroed statistics
func New(cfg Config, con *console.Console, rng *rand.Rand, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		con:   con,
		rng:   rng,
		store: state.New(),
		cues:  silentCues{},
	}
	g.store.Set(KeyScore, state.Int(0))
	g.store.Set(KeyGamesPlayed, state.Int(0))
	g.store.Set(KeyTotalAttempts, state.Int(0))

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Store exposes session state
func (g *Game) Store() *state.Store {
	return g.store
}

// Stats is a snapshot of session totals
type Stats struct {
	GamesPlayed   int64
	Score         int64
	TotalAttempts int64
}

// AverageAttempts returns attempts per played game, 0 before the first game
func (s Stats) AverageAttempts() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalAttempts) / float64(s.GamesPlayed)
}

// Stats reads totals from the store
func (g *Game) Stats() Stats {
	get := func(key string) int64 {
		n, _ := g.store.Get(key, state.Int(0)).AsInt()
		return n
	}
	return Stats{
		GamesPlayed:   get(KeyGamesPlayed),
		Score:         get(KeyScore),
		TotalAttempts: get(KeyTotalAttempts),
	}
}

// Run shows the main menu until the player quits
func (g *Game) Run() error {
	items := []struct {
		label string
		run   func() error
	}{
		{"Play Game", g.Play},
		{"View Statistics", g.ShowStats},
		{"About G2C", g.ShowAbout},
		{"Quit", nil},
	}
	choices := make([]string, len(items))
	for i := range items {
		choices[i] = strconv.Itoa(i + 1)
	}

	for {
		if err := g.screen(g.cfg.Title); err != nil {
			return err
		}
		for i, it := range items {
			g.con.Printf("%d. %s\n", i+1, it.label)
		}
		g.con.Println()

		choice, err := g.con.Choice(fmt.Sprintf("Enter your choice (1-%d): ", len(items)), choices, false)
		if err != nil {
			return err
		}
		idx, _ := strconv.Atoi(choice)
		item := items[idx-1]
		if item.run == nil {
			if err := g.con.ClearScreen(); err != nil {
				return err
			}
			return g.con.Println("Thanks for playing " + g.cfg.Title + "!")
		}
		if err := item.run(); err != nil {
			return err
		}
	}
}

// Play runs one round: difficulty selection, guessing, scoring
func (g *Game) Play() error {
	d, err := g.chooseDifficulty()
	if err != nil {
		return err
	}

	secret := g.rng.IntN(d.MaxNumber) + 1
	g.store.Set(KeyLastDifficulty, state.String(d.Name))
	g.store.SaveNamedCheckpoint(roundCheckpoint)
	log.Printf("game: round start difficulty=%s max=%d", d.Name, d.MaxNumber)

	if err := g.screen(fmt.Sprintf("%s - %s Mode", g.cfg.Title, d.Name)); err != nil {
		return err
	}
	g.con.Printf("I'm thinking of a number between 1 and %d.\n", d.MaxNumber)
	g.con.Printf("You have %d attempts to guess it! Enter 0 to give up.\n\n", d.MaxAttempts)

	completed, err := g.playRound(d, secret)
	if err != nil {
		return err
	}
	if completed {
		g.store.Incr(KeyGamesPlayed, 1)
	}

	g.con.Println()
	return g.con.Pause("Press Enter to return to main menu...")
}

// playRound reports false when the player abandoned the round
func (g *Game) playRound(d Difficulty, secret int) (bool, error) {
	for attempt := 1; attempt <= d.MaxAttempts; attempt++ {
		prompt := fmt.Sprintf("Attempt %d/%d: Enter your guess (1-%d): ", attempt, d.MaxAttempts, d.MaxNumber)
		guess, err := g.con.Number(prompt, 0, d.MaxNumber)
		if err != nil {
			return false, err
		}

		if guess == 0 {
			quit, err := g.con.YesNo("Do you want to quit the round?")
			if err != nil {
				return false, err
			}
			if quit {
				if err := g.store.RestoreNamed(roundCheckpoint); err != nil {
					return false, err
				}
				g.con.Println("Round abandoned.")
				return false, nil
			}
			attempt--
			continue
		}

		g.store.Incr(KeyTotalAttempts, 1)

		switch {
		case guess == secret:
			points := d.Points(attempt)
			g.store.Incr(KeyScore, int64(points))
			g.cues.PlayCorrect()
			g.con.Printf("Congratulations! You guessed it in %d attempts!\n", attempt)
			g.con.Printf("You earned %d points!\n", points)
			return true, nil
		case guess < secret:
			g.cues.PlayWrong()
			g.con.Println("Too low! Try a higher number.")
		default:
			g.cues.PlayWrong()
			g.con.Println("Too high! Try a lower number.")
		}
	}

	g.cues.PlayGameOver()
	g.con.Printf("Game over! The number was %d\n", secret)
	return true, nil
}

func (g *Game) chooseDifficulty() (Difficulty, error) {
	if err := g.screen("Game Setup"); err != nil {
		return Difficulty{}, err
	}
	g.con.Println("Choose difficulty level:")
	for i, d := range g.cfg.Difficulties {
		g.con.Printf("%d. %s (1-%d, %d attempts)\n", i+1, d.Name, d.MaxNumber, d.MaxAttempts)
	}

	n := len(g.cfg.Difficulties)
	pick, err := g.con.Number(fmt.Sprintf("Enter choice (1-%d): ", n), 1, n)
	if err != nil {
		return Difficulty{}, err
	}
	return g.cfg.Difficulties[pick-1], nil
}

// ShowStats prints session totals
func (g *Game) ShowStats() error {
	if err := g.screen("Game Statistics"); err != nil {
		return err
	}

	s := g.Stats()
	g.con.Printf("Games Played: %d\n", s.GamesPlayed)
	g.con.Printf("Total Score: %d\n", s.Score)
	g.con.Printf("Total Attempts: %d\n", s.TotalAttempts)
	if s.GamesPlayed > 0 {
		g.con.Printf("Average Attempts per Game: %.1f\n", s.AverageAttempts())
	}
	g.con.Println()
	return g.con.WaitKey("")
}

// ShowAbout prints the about page
func (g *Game) ShowAbout() error {
	if err := g.screen("About G2C"); err != nil {
		return err
	}
	g.con.Println(aboutText)
	g.con.Println()
	return g.con.WaitKey("")
}

func (g *Game) screen(title string) error {
	if err := g.con.ClearScreen(); err != nil {
		return err
	}
	return g.con.Header(title)
}
