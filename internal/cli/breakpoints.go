package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// breakpointsCommand prints the breakpoint table.
func (c *CLI) breakpointsCommand() *cobra.Command {
	var asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "breakpoints",
		Short: "Print the breakpoint table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				bp := grid.ForWidth(width)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bp, StyleDim.Render(grid.RangeOf(bp).Label))
				return nil
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(breakpointRows())
			}

			rows := make([][]string, 0, grid.NumBreakpoints)
			for _, r := range grid.Ranges {
				max := "-"
				if !r.Unbounded() {
					max = strconv.Itoa(r.MaxWidth)
				}
				infix := r.Breakpoint.Infix()
				if infix == "" {
					infix = StyleDim.Render("(none)")
				}
				rows = append(rows, []string{r.Breakpoint.String(), infix, strconv.Itoa(r.MinWidth), max, r.Label})
			}
			fmt.Fprintln(cmd.OutOrStdout(), newTable("Name", "Infix", "Min px", "Max px", "Label").Rows(rows...).Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as json")
	cmd.Flags().IntVar(&width, "width", 0, "print the breakpoint active at this viewport width")
	return cmd
}

// breakpointRow is the json form of one breakpoint.
type breakpointRow struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	MinWidth int    `json:"minWidth"`
	MaxWidth int    `json:"maxWidth,omitempty"`
	Help     string `json:"help"`
}

func breakpointRows() []breakpointRow {
	out := make([]breakpointRow, 0, grid.NumBreakpoints)
	for _, r := range grid.Ranges {
		out = append(out, breakpointRow{
			Name:     r.Breakpoint.String(),
			Label:    r.Label,
			MinWidth: r.MinWidth,
			MaxWidth: r.MaxWidth,
			Help:     r.Help(),
		})
	}
	return out
}
