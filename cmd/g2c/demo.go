package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/g2c/console"
	"github.com/lixenwraith/g2c/state"
	"github.com/lixenwraith/g2c/terminal/tui"
)

// demoCmd walks through each toolkit feature
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the toolkit features",
	Long: `Show the toolkit features one by one: terminal size and centered text,
the game state store with checkpoint save and restore, and the validated prompts.

Examples:
  # Run the showcase
  g2c demo

  # Scripted run
  printf 'y\nAda\nblue\n7\n' | g2c demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(console.New(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

func runDemo(con *console.Console) error {
	if err := con.Header("Welcome to G2C Demo"); err != nil {
		return err
	}
	con.Println("G2C (Game to Console) Toolkit Demonstration")
	con.Println(tui.RepeatRune('=', 50))
	con.Println()

	con.Println("1. Console Utilities Demo:")
	w, h := con.Size()
	con.Printf("   - Console size: %d x %d\n", w, h)
	con.Printf("   - Centered text: [%s]\n", tui.Center("*** G2C ***", 30))
	con.Println()

	con.Println("2. Game State Management Demo:")
	s := state.New()
	s.Set("demo_score", state.Int(1000))
	s.Set("demo_level", state.Int(5))
	s.Set("demo_inventory", state.List(state.String("map"), state.String("lamp")))
	con.Printf("   - Score stored: %v\n", s.Get("demo_score", state.Null()))
	con.Printf("   - Level stored: %v\n", s.Get("demo_level", state.Null()))
	cp := s.SaveCheckpoint()
	con.Printf("   - State checkpoint %d saved\n", cp)
	s.Incr("demo_score", -250)
	s.Set("demo_inventory", state.List())
	con.Printf("   - After losing a life: score %v, inventory %v\n",
		s.Get("demo_score", state.Null()), s.Get("demo_inventory", state.Null()))
	if err := s.RestoreCheckpoint(cp); err != nil {
		return err
	}
	con.Printf("   - Restored checkpoint %d: score %v, inventory %v\n", cp,
		s.Get("demo_score", state.Null()), s.Get("demo_inventory", state.Null()))
	con.Println()

	try, err := con.YesNo("3. Try input handling demo?")
	if err != nil {
		return err
	}
	if try {
		if err := inputDemo(con); err != nil {
			return err
		}
	}

	con.Println()
	if err := con.Box("G2C Demo Complete!", '=', 2); err != nil {
		return err
	}
	con.Println()
	con.Println("Next steps:")
	con.Println("  - Run: g2c guess")
	return nil
}

func inputDemo(con *console.Console) error {
	con.Println("\nInput Handling Demo:")

	name, err := con.Line("   - Enter your name: ")
	if err != nil {
		return err
	}
	color, err := con.Choice("   - Choose a color (red/blue/green): ", []string{"red", "blue", "green"}, false)
	if err != nil {
		return err
	}
	number, err := con.Number("   - Enter a number (1-10): ", 1, 10)
	if err != nil {
		return err
	}

	return con.Println(fmt.Sprintf("\n   Results: Hello %s! You chose %s and number %d", name, color, number))
}
