/*
Copyright © 2026 petalsoft

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petalsoft/sakuradrill/internal/app"
)

// flashcardsCmd represents the flashcards command
var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Leitner flashcard sessions",
}

var flashcardsDrawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Start a session and draw cards weighted toward the lowest boxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// drill.seed is bound by the drill command; an explicit flag here
		// overrides it for this invocation only.
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			viper.Set(drillSeedKey, seed)
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		cards, session, err := c.Flashcards.DrawSession(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Session %d: %d cards\n", session, len(cards))
		for i, card := range cards {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%s] %s  (%s)\n", i+1, card.ID, card.Front, card.Category)
		}
		return nil
	},
}

var flashcardsGradeCmd = &cobra.Command{
	Use:   "grade <card-id> <ok|ng>",
	Short: "Grade a card: ok advances its box, ng sends it back to box 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var correct bool
		switch args[1] {
		case "ok":
			correct = true
		case "ng":
			correct = false
		default:
			return fmt.Errorf("grade must be ok or ng, got %q", args[1])
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		box, err := c.Flashcards.Grade(ctx, args[0], correct)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is now in box %d.\n", args[0], box)
		return nil
	},
}

var flashcardsFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Close the session, recording the best combo reached",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		combo, err := cmd.Flags().GetInt("combo")
		if err != nil {
			return err
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := c.Flashcards.FinishSession(ctx, combo); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Session finished.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flashcardsCmd)
	flashcardsCmd.AddCommand(flashcardsDrawCmd)
	flashcardsCmd.AddCommand(flashcardsGradeCmd)
	flashcardsCmd.AddCommand(flashcardsFinishCmd)

	flashcardsFinishCmd.Flags().Int("combo", 0, "best consecutive-correct streak reached this session")

	flashcardsDrawCmd.Flags().Int64("seed", 0, "random seed for a reproducible draw (0 = time-based)")
}
