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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/petalsoft/sakuradrill/internal/app"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review <problem-id> <quality>",
	Short: "Record an answer (quality 1 = failed, 3 = hesitant, 5 = confident)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		quality, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quality must be a number: %w", err)
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		rec, err := c.Review.RecordAnswer(ctx, args[0], quality)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded. Next review %s (interval %dd, ease %.2f, reps %d).\n",
			rec.NextReviewDate.Format("2006-01-02"), rec.Interval, rec.EaseFactor, rec.Repetitions)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
