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
	"github.com/petalsoft/sakuradrill/internal/entity"
)

// dueCmd represents the due command
var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show how many problems are due per difficulty band",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		for _, mode := range []entity.DrillMode{entity.ModeNormal, entity.ModeHighLevel} {
			count, isDue, err := c.Drill.DueCount(ctx, mode)
			if err != nil {
				return err
			}
			if isDue {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d due\n", mode, count)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s nothing due (%d available for practice)\n", mode, count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
}
