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

	"github.com/petalsoft/sakuradrill/internal/app"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, sakura, and flashcard progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		snap, err := c.Review.Snapshot(ctx)
		if err != nil {
			return err
		}
		stats, sessions, err := c.Flashcards.Stats(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Streak: %d day(s), best %d (last active %s)\n",
			snap.Streak.CurrentStreak, snap.Streak.LongestStreak, orNever(snap.Streak.LastActiveDate))
		fmt.Fprintf(out, "Sakura: %d/%d bloom(s) on the current tree, %d full tree(s), %d total\n",
			snap.Sakura.CurrentTreeBlooms, snap.Sakura.FullBloomThreshold, snap.Sakura.FullBloomCount, snap.Sakura.TotalBlooms)
		fmt.Fprintf(out, "Reviews: %d problem(s) seen\n", len(snap.Reviews))

		accuracy := 0.0
		if stats.TotalSeen > 0 {
			accuracy = float64(stats.TotalCorrect) / float64(stats.TotalSeen) * 100
		}
		fmt.Fprintf(out, "Flashcards: %d session(s), %d/%d correct (%.0f%%), best combo %d, %d mastered\n",
			sessions, stats.TotalCorrect, stats.TotalSeen, accuracy, stats.BestCombo, stats.MasteredCount)
		return nil
	},
}

func orNever(date string) string {
	if date == "" {
		return "never"
	}
	return date
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
