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
	"sort"

	"github.com/google/cel-go/cel"
	"github.com/spf13/cobra"

	"github.com/petalsoft/sakuradrill/internal/app"
	"github.com/petalsoft/sakuradrill/internal/entity"
	"github.com/petalsoft/sakuradrill/pkg/filterexpr"
)

var problemFilterSchema = filterexpr.Schema{
	"id":          cel.StringType,
	"source":      cel.StringType,
	"correctRate": cel.IntType,
	"tags":        cel.ListType(cel.StringType),
}

var problemOrderKeys = []string{"id", "source", "correctRate"}

// problemsCmd represents the problems command
var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List catalog problems, optionally filtered and ordered",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		filter, err := cmd.Flags().GetString("filter")
		if err != nil {
			return err
		}
		orderBy, err := cmd.Flags().GetString("order-by")
		if err != nil {
			return err
		}
		ord, err := filterexpr.ParseOrderBy(orderBy, "id", problemOrderKeys)
		if err != nil {
			return err
		}

		var prg *filterexpr.Program
		if filter != "" {
			prg, err = filterexpr.Compile(filter, problemFilterSchema)
			if err != nil {
				return err
			}
		}

		c, cleanup, err := app.Initialize()
		if err != nil {
			return err
		}
		defer cleanup()

		all, err := c.Catalog.Problems(ctx)
		if err != nil {
			return err
		}

		problems := make([]entity.Problem, 0, len(all))
		for _, p := range all {
			if prg != nil {
				tags := make([]string, len(p.Tags))
				copy(tags, p.Tags)
				keep, err := prg.Eval(map[string]any{
					"id":          p.ID,
					"source":      p.Source,
					"correctRate": int64(p.CorrectRate),
					"tags":        tags,
				})
				if err != nil {
					return err
				}
				if !keep {
					continue
				}
			}
			problems = append(problems, p)
		}

		sort.SliceStable(problems, func(i, j int) bool {
			var less bool
			switch ord.Key {
			case "source":
				less = problems[i].Source < problems[j].Source
			case "correctRate":
				less = problems[i].CorrectRate < problems[j].CorrectRate
			default:
				less = problems[i].ID < problems[j].ID
			}
			if ord.Desc {
				return !less && !problemsEqualKey(problems[i], problems[j], ord.Key)
			}
			return less
		})

		for _, p := range problems {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d%%\t%s\n", p.ID, p.Source, p.CorrectRate, joinTags(p.Tags))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d problem(s)\n", len(problems))
		return nil
	},
}

func problemsEqualKey(a, b entity.Problem, key string) bool {
	switch key {
	case "source":
		return a.Source == b.Source
	case "correctRate":
		return a.CorrectRate == b.CorrectRate
	default:
		return a.ID == b.ID
	}
}

func init() {
	rootCmd.AddCommand(problemsCmd)

	problemsCmd.Flags().String("filter", "", `CEL filter over id, source, correctRate, tags (e.g. 'correctRate < 50 && "geometry" in tags')`)
	problemsCmd.Flags().String("order-by", "", "order clause: id|source|correctRate [asc|desc]")
}
