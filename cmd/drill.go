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

const drillSeedKey = "drill.seed"

// drillCmd represents the drill command
var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Select today's practice batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		mode, err := modeFromFlag(cmd)
		if err != nil {
			return err
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		due, batch, err := c.Drill.SelectBatch(ctx, mode)
		if err != nil {
			return err
		}

		if len(batch) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No problems in the %s band. Nothing to drill.\n", mode)
			return nil
		}
		if due.IsDue {
			fmt.Fprintf(cmd.OutOrStdout(), "Review due: %d problem(s), drilling %d.\n", len(due.Problems), len(batch))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing due today — free practice, weakest problems first (%d picked).\n", len(batch))
		}
		for i, p := range batch {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%s] %s (rate %d%%, tags %s)\n",
				i+1, p.ID, p.Source, p.CorrectRate, joinTags(p.Tags))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nAnswer with: sakuradrill review <problem-id> <1|3|5>")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(drillCmd)

	drillCmd.Flags().String("mode", "normal", "difficulty band: normal or highlevel")
	drillCmd.Flags().Int64("seed", 0, "random seed for reproducible batch order (0 = time-based)")
	bindFlagToViper(drillSeedKey, drillCmd.Flags().Lookup("seed"))
}
